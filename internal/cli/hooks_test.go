package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.DebugLevel))
	ctx := context.Background()

	h.OnRunStart(ctx, "in.jpg", "out.pdf")
	h.OnStageStart(ctx, "crop")
	h.OnStageComplete(ctx, "crop", 3*time.Millisecond, nil)
	h.OnStageComplete(ctx, "save", time.Millisecond, errors.New("disk full"))
	h.OnRunComplete(ctx, "out.pdf", 0, time.Second, errors.New("disk full"))

	out := buf.String()
	for _, want := range []string{"run started", "stage done", "stage failed", "disk full", "run failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHooks(newLogger(&buf, log.InfoLevel))
	h.OnStageStart(context.Background(), "load")
	if buf.Len() != 0 {
		t.Errorf("stage events should be debug-only, got %q", buf.String())
	}
}
