package service

import (
	"time"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

// LocaleClassifier splits each locale's untranslated keys for the
// tracked file into hard blockers and keys still inside the post-beta
// grace window.
type LocaleClassifier struct {
	trackedFile string
	grace       time.Duration
}

// NewLocaleClassifier creates a classifier for one tracked file with
// the standard three-week grace window.
func NewLocaleClassifier(trackedFile string) *LocaleClassifier {
	return &LocaleClassifier{
		trackedFile: trackedFile,
		grace:       3 * 7 * 24 * time.Hour,
	}
}

// Classify partitions every locale's missing keys for the tracked
// file. A key blocks ("missing") when it landed strictly before the
// release-channel start, or when it landed on or after the beta start
// and beta has been running at least the grace window, meaning the
// beta-channel translation fallback had time to catch up and did not.
// Keys that landed between the two starts stay "pending" regardless of
// age. Locales with nothing missing for the tracked file are omitted.
func (c *LocaleClassifier) Classify(report *domain.LocaleReport, betaStart, releaseStart, now time.Time) map[string]domain.Classification {
	betaAged := now.Sub(betaStart) >= c.grace

	out := make(map[string]domain.Classification)
	for locale, status := range report.Locales {
		keys := status.MissingByFile[c.trackedFile]
		if len(keys) == 0 {
			continue
		}

		var missing, pending []string
		for _, key := range keys {
			intro, known := report.KeyDates[key]
			switch {
			case !known:
				// No landing date recorded: assume old enough to block.
				missing = append(missing, key)
			case intro.Before(releaseStart), !intro.Before(betaStart) && betaAged:
				missing = append(missing, key)
			default:
				pending = append(pending, key)
			}
		}
		out[locale] = domain.Classification{Missing: missing, Pending: pending}
	}
	return out
}
