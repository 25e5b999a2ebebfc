package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnRunStart(_ context.Context, input, output string) {
	h.logger.Debug("run started", "input", input, "output", output)
}

func (h *logHooks) OnRunComplete(_ context.Context, output string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run failed", "output", output, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("run finished", "output", output, "bytes", size, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnStageStart(_ context.Context, stage string) {
	h.logger.Debug("stage", "name", stage)
}

func (h *logHooks) OnStageComplete(_ context.Context, stage string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("stage failed", "name", stage, "err", err)
		return
	}
	h.logger.Debug("stage done", "name", stage, "duration", d.Round(time.Microsecond))
}
