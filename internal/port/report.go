package port

import (
	"context"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

// ReportSource loads the per-locale missing-string report for the
// assessed revision.
type ReportSource interface {
	Fetch(ctx context.Context, gitRev string) (*domain.LocaleReport, error)
}
