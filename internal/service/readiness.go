package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// ReadinessService runs the full train-hop assessment for one
// revision: identifier resolution, then the independent upstream
// fetches concurrently, then locale classification once both merge
// dates are known.
type ReadinessService struct {
	validator  *RevisionValidator
	ci         *CIAggregator
	hg         port.HgHistory
	schedule   *ScheduleGateway
	reports    port.ReportSource
	classifier *LocaleClassifier

	mainPath   string
	webextPath string

	now func() time.Time
}

// NewReadinessService wires the assessment pipeline. mainPath and
// webextPath are the two parallel copies of the tracked localization
// file in the source tree.
func NewReadinessService(
	validator *RevisionValidator,
	ci *CIAggregator,
	hg port.HgHistory,
	schedule *ScheduleGateway,
	reports port.ReportSource,
	classifier *LocaleClassifier,
	mainPath, webextPath string,
) *ReadinessService {
	return &ReadinessService{
		validator:  validator,
		ci:         ci,
		hg:         hg,
		schedule:   schedule,
		reports:    reports,
		classifier: classifier,
		mainPath:   mainPath,
		webextPath: webextPath,
		now:        time.Now,
	}
}

// Assess runs one readiness assessment. On a terminal failure the
// returned result still carries the identifiers resolved so far.
// Declined operator input surfaces as a *port.MissingInputError and
// the classifier never runs.
func (s *ReadinessService) Assess(ctx context.Context, raw string, kind domain.InputKind, dates port.DateProvider) (*domain.ReadinessResult, error) {
	ident, err := s.validator.ResolveTarget(ctx, raw, kind)
	result := &domain.ReadinessResult{Identifier: ident}
	if err != nil {
		return result, err
	}

	slog.Info("assessing revision", "git_id", ident.GitID, "hg_id", ident.HgID)

	var (
		ci         *domain.PushResult
		mainInfo   *domain.FileInfo
		webextInfo *domain.FileInfo
		report     *domain.LocaleReport
		merge      domain.MergeDates
	)

	// Plain group, no shared-context cancellation: a failing branch does
	// not abort its siblings, the result is just unusable until all have
	// settled.
	var g errgroup.Group
	g.Go(func() error {
		var err error
		ci, err = s.ci.PushAndJobs(ctx, ident.GitID)
		if err != nil {
			return fmt.Errorf("ci data: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mainInfo, err = s.hg.FileInfo(ctx, ident.HgID, s.mainPath)
		if err != nil {
			return fmt.Errorf("main file info: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		webextInfo, err = s.hg.FileInfo(ctx, ident.HgID, s.webextPath)
		if err != nil {
			return fmt.Errorf("webext file info: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		report, err = s.reports.Fetch(ctx, ident.GitID)
		if err != nil {
			return fmt.Errorf("locale report: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// The gateway absorbs its own failures into nil fields.
		merge = s.schedule.MergeDates(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return result, err
	}

	result.CI = ci
	result.MainFile = mainInfo
	result.WebextFile = webextInfo
	sync := CompareSync(*mainInfo, *webextInfo)
	result.FileSync = &sync
	result.MergeDates = merge

	if merge.BetaStart == nil {
		d, err := s.requestDate(ctx, dates, "beta_start")
		if err != nil {
			return result, err
		}
		result.MergeDates.BetaStart = d
	}
	if merge.ReleaseStart == nil {
		d, err := s.requestDate(ctx, dates, "release_start")
		if err != nil {
			return result, err
		}
		result.MergeDates.ReleaseStart = d
	}

	result.Locales = s.classifier.Classify(
		report,
		*result.MergeDates.BetaStart,
		*result.MergeDates.ReleaseStart,
		s.now(),
	)

	return result, nil
}

// requestDate asks the operator for a date the calendar could not
// supply. A declined prompt is a MissingInputError, not an upstream
// failure.
func (s *ReadinessService) requestDate(ctx context.Context, dates port.DateProvider, field string) (*time.Time, error) {
	d, err := dates.RequestDate(ctx, field)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &port.MissingInputError{Field: field}
	}
	return d, nil
}
