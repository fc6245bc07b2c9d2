package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/pricedge/pkg/contracts"
)

// RedisStream publishes each matched game's EV opportunities to
// ev.opportunities.<sport_key>, for embedding this core as the front of the
// fortuna pipeline. Grounded on the teacher's
// normalizer/internal/publisher stream publisher (XAdd, pipeline batch).
type RedisStream struct {
	client *redis.Client
}

func NewRedisStream(client *redis.Client) *RedisStream {
	return &RedisStream{client: client}
}

func (s *RedisStream) Write(ctx context.Context, result contracts.RunResult) error {
	if len(result.MatchedGames) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, mg := range result.MatchedGames {
		streamKey := fmt.Sprintf("ev.opportunities.%s", mg.Sport)
		for _, opp := range mg.Opportunities {
			data, err := json.Marshal(opp)
			if err != nil {
				return fmt.Errorf("sink: failed to marshal opportunity: %w", err)
			}
			pipe.XAdd(ctx, &redis.XAddArgs{
				Stream: streamKey,
				Values: map[string]interface{}{"data": string(data)},
			})
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("sink: failed to publish opportunities: %w", err)
	}
	return nil
}
