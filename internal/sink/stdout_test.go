package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/XavierBriggs/pricedge/pkg/contracts"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	w.Close()

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestStdoutWritesIndentedJSONResult(t *testing.T) {
	result := contracts.RunResult{
		TotalMatches: 1,
		TimestampUTC: "2026-01-01T00:00:00Z",
	}

	out := captureStdout(t, func() {
		if err := (Stdout{}).Write(context.Background(), result); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	var decoded contracts.RunResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("expected valid JSON output, got error %v for %q", err, out)
	}
	if decoded.TotalMatches != 1 {
		t.Fatalf("got %d, want 1", decoded.TotalMatches)
	}
}
