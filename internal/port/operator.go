package port

import (
	"context"
	"time"
)

// DateProvider is the operator-input collaborator. When the release
// calendar could not supply a merge date, the orchestrator asks for it
// here. A nil date with a nil error means the operator declined, which
// aborts the assessment rather than erroring.
type DateProvider interface {
	RequestDate(ctx context.Context, field string) (*time.Time, error)
}
