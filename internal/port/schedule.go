package port

import (
	"context"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

// ReleaseCalendar serves the per-channel release schedule.
type ReleaseCalendar interface {
	Schedule(ctx context.Context, channel string) (*domain.ChannelSchedule, error)
}
