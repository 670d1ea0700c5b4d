package match

import (
	"context"
	"log/slog"

	"github.com/mcoot/battleship-go2/internal/model"
)

//go:generate go tool mockgen -destination=./mocks/event_sink_mock.go -package=mocks . EventSink

// EventSink receives match events as they happen.
// Publish must not block; sinks that fan out do so on their own.
type EventSink interface {
	Publish(ctx context.Context, event model.Event)
}

// NopSink discards every event
type NopSink struct{}

func (NopSink) Publish(context.Context, model.Event) {}

// LogSink writes events to a structured logger
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With(slog.String("component", "match-events"))}
}

// Publish logs the event at Info, with payload fields flattened into attributes
func (s *LogSink) Publish(ctx context.Context, event model.Event) {
	attrs := []slog.Attr{
		slog.String("event", string(event.Type)),
		slog.String("match_id", string(event.MatchID)),
	}
	if event.Side != "" {
		attrs = append(attrs, slog.String("side", string(event.Side)))
	}

	switch p := event.Payload.(type) {
	case model.ShipPlacedPayload:
		attrs = append(attrs,
			slog.String("ship", p.Ship),
			slog.Int("cells", len(p.Positions)),
			slog.Bool("random", p.Random),
		)
	case model.AttackResolvedPayload:
		attrs = append(attrs,
			slog.String("target", p.Target.String()),
			slog.String("result", p.Result.String()),
			slog.Int("turn", p.Turn),
		)
	case model.MatchOverPayload:
		attrs = append(attrs,
			slog.String("winner", string(p.Winner)),
			slog.Int("turns", p.Turns),
		)
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "match event", attrs...)
}

var (
	_ EventSink = NopSink{}
	_ EventSink = (*LogSink)(nil)
)
