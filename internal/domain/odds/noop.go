package odds

import "github.com/google/uuid"

// NoOpLogger discards every event. It is the zero-value-friendly default:
// an OddsCalculator with a nil Logger already skips logging entirely, but
// NoOpLogger is available for callers that want to pass a concrete,
// always-valid RunLogger (a worker pool handing every goroutine its own
// calculator, say, without needing a nil check at each call site).
type NoOpLogger struct{}

func (NoOpLogger) LogCell(uuid.UUID, string, int, int, *int, []ActionValueSummary) {}
