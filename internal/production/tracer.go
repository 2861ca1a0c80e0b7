package production

import (
	"context"
	"log/slog"

	"github.com/comalice/tapemachine/internal/primitives"
)

// ChannelTracer forwards step events to a Go channel.
// Non-blocking: events are dropped when the channel is full.
type ChannelTracer struct {
	ch chan<- primitives.StepEvent
}

// NewChannelTracer creates a ChannelTracer with the given output channel.
func NewChannelTracer(ch chan<- primitives.StepEvent) *ChannelTracer {
	return &ChannelTracer{ch: ch}
}

func (t *ChannelTracer) Step(ev primitives.StepEvent) {
	select {
	case t.ch <- ev:
	default:
	}
}

func (t *ChannelTracer) Close() error {
	close(t.ch)
	return nil
}

// LogTracer writes one log record per step.
type LogTracer struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogTracer creates a LogTracer logging at level. A nil logger means
// slog.Default().
func NewLogTracer(logger *slog.Logger, level slog.Level) *LogTracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTracer{logger: logger, level: level}
}

func (t *LogTracer) Step(ev primitives.StepEvent) {
	t.logger.Log(context.Background(), t.level, "step",
		"n", ev.Step,
		"rule", ev.Rule.String(),
		"position", ev.Position,
		"halted", ev.Halted,
	)
}
