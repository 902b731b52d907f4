package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

const calendarDateLayout = "2006-01-02"

// ScheduleGateway fetches the channel merge dates. The two calendar
// sources are of unequal reliability and neither blocks the other, so
// a failed fetch logs and leaves its field nil instead of erroring;
// the optionality lives in the MergeDates type itself.
type ScheduleGateway struct {
	calendar port.ReleaseCalendar
}

// NewScheduleGateway creates a gateway over a release calendar.
func NewScheduleGateway(calendar port.ReleaseCalendar) *ScheduleGateway {
	return &ScheduleGateway{calendar: calendar}
}

// MergeDates fetches both channel start dates in parallel.
func (g *ScheduleGateway) MergeDates(ctx context.Context) domain.MergeDates {
	var (
		dates domain.MergeDates
		wg    sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		dates.BetaStart = g.betaStart(ctx)
	}()
	go func() {
		defer wg.Done()
		dates.ReleaseStart = g.releaseStart(ctx)
	}()
	wg.Wait()

	return dates
}

// betaStart is the calendar's beta merge day, taken verbatim.
func (g *ScheduleGateway) betaStart(ctx context.Context) *time.Time {
	sched, err := g.calendar.Schedule(ctx, "beta")
	if err != nil {
		slog.Warn("beta schedule fetch failed", "error", err)
		return nil
	}
	t, err := time.Parse(calendarDateLayout, sched.MergeDay)
	if err != nil {
		slog.Warn("beta merge day unparseable", "merge_day", sched.MergeDay, "error", err)
		return nil
	}
	return &t
}

// releaseStart derives the release-channel start. The calendar never
// publishes a release merge date; the known proxy is the Monday of the
// week the version's first beta was built.
func (g *ScheduleGateway) releaseStart(ctx context.Context) *time.Time {
	sched, err := g.calendar.Schedule(ctx, "release")
	if err != nil {
		slog.Warn("release schedule fetch failed", "error", err)
		return nil
	}
	beta1, err := time.Parse(calendarDateLayout, sched.Beta1)
	if err != nil {
		slog.Warn("release beta_1 date unparseable", "beta_1", sched.Beta1, "error", err)
		return nil
	}
	t := previousMonday(beta1)
	return &t
}

// previousMonday walks back to the most recent Monday on or before d.
func previousMonday(d time.Time) time.Time {
	return d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
}
