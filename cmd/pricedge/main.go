package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/pricedge/internal/config"
	"github.com/XavierBriggs/pricedge/internal/httpapi"
	"github.com/XavierBriggs/pricedge/internal/pipeline"
	"github.com/XavierBriggs/pricedge/internal/sink"
	"github.com/XavierBriggs/pricedge/pkg/contracts"
)

func main() {
	fmt.Println("=== pricedge ===")

	configPath := flag.String("config", "./config.yaml", "path to config YAML")
	feedPath := flag.String("feed", "./reference_events.json", "path to reference-event feed JSON")
	scraperURL := flag.String("scraper-url", "", "base URL of the secondary-book scraper collaborator")
	serve := flag.Bool("serve", false, "expose /healthz and /metrics while the run executes")
	sinkMode := flag.String("sink", "stdout", "output sink: stdout, redis, postgres")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("❌ failed to load config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ config loaded: fuzzy_threshold=%.0f concurrent_scrapes=%d\n",
		cfg.FuzzyMatchThreshold, cfg.ConcurrentScrapes)

	feed := &fileReferenceFeed{path: *feedPath}

	var scraper contracts.Scraper
	if *scraperURL != "" {
		scraper = newHTTPScraper(*scraperURL, &http.Client{Timeout: 60 * time.Second})
	} else {
		scraper = &nullScraper{}
		fmt.Println("⚠️  no --scraper-url given; every event will come back unmatched")
	}

	outSink, err := buildSink(*sinkMode, cfg)
	if err != nil {
		fmt.Printf("❌ failed to build sink: %v\n", err)
		os.Exit(1)
	}

	orchestrator := pipeline.NewOrchestrator(cfg.PipelineConfig(), cfg.MatcherConfig(), feed, scraper, outSink)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var httpServer *http.Server
	var status *httpapi.Server
	if *serve {
		status = httpapi.New(orchestrator)
		httpServer = &http.Server{Addr: cfg.ListenAddr, Handler: status.Handler()}
		go func() {
			fmt.Printf("✓ status surface listening on %s\n", cfg.ListenAddr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Printf("⚠️  status surface error: %v\n", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			httpServer.Shutdown(shutdownCtx)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := orchestrator.Run(ctx)
		if status != nil {
			status.MarkReady()
		}
		errCh <- err
	}()

	select {
	case sig := <-sigCh:
		fmt.Printf("\n⚠️  received signal: %v\n", sig)
		cancel()
	case err := <-errCh:
		if err != nil {
			fmt.Printf("❌ run failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("🛑 shutdown complete")
}

func buildSink(mode string, cfg config.Config) (contracts.Sink, error) {
	switch mode {
	case "stdout", "":
		return sink.Stdout{}, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisURL, Password: cfg.RedisPassword})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return sink.NewRedisStream(client), nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres open failed: %w", err)
		}
		if err := db.PingContext(context.Background()); err != nil {
			return nil, fmt.Errorf("postgres ping failed: %w", err)
		}
		return sink.NewPostgres(db), nil
	default:
		return nil, fmt.Errorf("unknown sink mode %q", mode)
	}
}
