package service

import (
	"context"
	"fmt"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// CIAggregator gathers push and job data for a revision and reshapes
// the columnar job payload into named records.
type CIAggregator struct {
	ci          port.CIService
	groupSymbol string
}

// NewCIAggregator creates an aggregator filtered to one job group.
func NewCIAggregator(ci port.CIService, groupSymbol string) *CIAggregator {
	return &CIAggregator{ci: ci, groupSymbol: groupSymbol}
}

// PushAndJobs returns the push for a git revision together with its
// train-hop jobs. A push with no matching jobs yields an empty job
// list, not an error.
func (a *CIAggregator) PushAndJobs(ctx context.Context, gitRev string) (*domain.PushResult, error) {
	push, err := a.ci.PushByRevision(ctx, gitRev)
	if err != nil {
		return nil, err
	}

	payload, err := a.ci.JobsForPush(ctx, push.ID, a.groupSymbol)
	if err != nil {
		return nil, err
	}

	jobs, err := zipJobs(payload)
	if err != nil {
		return nil, err
	}

	return &domain.PushResult{Push: *push, Jobs: jobs}, nil
}

// zipJobs rebuilds named job records from the shared property-name
// list and the positional rows. A row whose length disagrees with the
// name list is an error, not a truncation.
func zipJobs(payload *domain.JobPayload) ([]domain.JobRecord, error) {
	if len(payload.PropertyNames) == 0 || len(payload.Rows) == 0 {
		return []domain.JobRecord{}, nil
	}

	jobs := make([]domain.JobRecord, 0, len(payload.Rows))
	for i, row := range payload.Rows {
		if len(row) != len(payload.PropertyNames) {
			return nil, fmt.Errorf("job row %d has %d values for %d properties", i, len(row), len(payload.PropertyNames))
		}
		rec := make(domain.JobRecord, len(row))
		for j, name := range payload.PropertyNames {
			rec[name] = row[j]
		}
		jobs = append(jobs, rec)
	}
	return jobs, nil
}
