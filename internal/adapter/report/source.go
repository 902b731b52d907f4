package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
	"github.com/relman-tools/trainhop-readiness/internal/port"
)

// Source reads the locale completeness report committed to the source
// tree, through the git history's contents API, so the report always
// matches the assessed revision.
type Source struct {
	git  port.GitHistory
	path string
}

// New creates a report source for one in-tree report path.
func New(git port.GitHistory, path string) *Source {
	return &Source{git: git, path: path}
}

// rawReport mirrors the on-disk JSON; key dates arrive as YYYY-MM-DD.
type rawReport struct {
	Locales map[string]struct {
		Missing map[string][]string `json:"missing"`
	} `json:"locales"`
	KeyDates map[string]string `json:"key_dates"`
}

// Fetch loads and parses the report at a git revision.
func (s *Source) Fetch(ctx context.Context, gitRev string) (*domain.LocaleReport, error) {
	data, err := s.git.FileContent(ctx, gitRev, s.path)
	if err != nil {
		return nil, fmt.Errorf("report: load %s: %w", s.path, err)
	}

	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("report: parse %s: %w", s.path, err)
	}

	out := &domain.LocaleReport{
		Locales:  make(map[string]domain.LocaleStatus, len(raw.Locales)),
		KeyDates: make(map[string]time.Time, len(raw.KeyDates)),
	}
	for locale, st := range raw.Locales {
		out.Locales[locale] = domain.LocaleStatus{MissingByFile: st.Missing}
	}
	for key, d := range raw.KeyDates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("report: key %q has invalid date %q: %w", key, d, err)
		}
		out.KeyDates[key] = t
	}
	return out, nil
}
