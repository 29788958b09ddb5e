// Package telemetry provides a structured, leveled RunLogger implementation
// for internal/domain/odds, built on github.com/rs/zerolog. The engine
// itself performs no I/O; telemetry is the concrete sink a CLI front end
// wires in.
package telemetry

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"blackjackodds/internal/domain/odds"
)

// Logger is a zerolog-backed odds.RunLogger.
type Logger struct {
	log zerolog.Logger
}

// New builds a Logger writing JSON-structured events to w.
func New(w io.Writer) *Logger {
	return &Logger{log: zerolog.New(w).With().Timestamp().Logger()}
}

// LogCell reports one evaluated table cell at debug level: the run, the
// rule, the opening hand, the house up-card, and every legal action's
// expected value.
func (l *Logger) LogCell(runID uuid.UUID, ruleName string, pc0, hc int, pc1 *int, results []odds.ActionValueSummary) {
	event := l.log.Debug().
		Str("run_id", runID.String()).
		Str("rule", ruleName).
		Int("player_card0", pc0).
		Int("house_card", hc)
	if pc1 != nil {
		event = event.Int("player_card1", *pc1)
	}
	arr := zerolog.Arr()
	for _, r := range results {
		arr = arr.Dict(zerolog.Dict().Str("action", string(r.Action)).Float64("value", r.Value))
	}
	event.Array("actions", arr).Msg("calculated cell")
}

// LogPrune reports a branch dropped below PROB_EVENT_TOLERANCE during a
// bind, at trace level — useful for tuning the event tolerance without
// drowning in per-cell noise.
func (l *Logger) LogPrune(runID uuid.UUID, droppedMass float64) {
	l.log.Trace().Str("run_id", runID.String()).Float64("dropped_mass", droppedMass).Msg("pruned low-probability branch")
}
