package odds

import (
	"github.com/google/uuid"

	"blackjackodds/internal/domain/rules"
)

// ActionValueSummary is the float64-reduced form of ActionValue, used at
// logging boundaries so RunLogger doesn't need to be generic over the
// calculator's numeric backend.
type ActionValueSummary struct {
	Action rules.Action
	Value  float64
}

// RunLogger observes an odds-calculation run without participating in it:
// every calculated cell (and, when applicable, split recursion) is reported
// here. Implementations live in internal/infrastructure; the domain layer
// only depends on this interface, never on zerolog or any other concrete
// sink.
type RunLogger interface {
	// LogCell reports one evaluated cell's results.
	LogCell(runID uuid.UUID, ruleName string, pc0, hc int, pc1 *int, results []ActionValueSummary)
}

// PruneLogger is an optional capability a RunLogger may additionally
// implement to observe branches probdist.Bind drops below
// PROB_EVENT_TOLERANCE. Most RunLoggers (a CSV run-history writer, say)
// have no use for per-branch pruning noise; SetLogger only wires this
// hook up when the attached logger asks for it.
type PruneLogger interface {
	LogPrune(runID uuid.UUID, droppedMass float64)
}
