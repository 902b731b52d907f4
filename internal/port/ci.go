package port

import (
	"context"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

// CIService looks up pushes and their jobs in the CI system.
type CIService interface {
	// PushByRevision returns the push for a git revision; zero matches
	// is a *NotFoundError.
	PushByRevision(ctx context.Context, rev string) (*domain.Push, error)

	// JobsForPush returns the raw columnar job listing for a push,
	// filtered to one job group.
	JobsForPush(ctx context.Context, pushID int64, groupSymbol string) (*domain.JobPayload, error)
}
