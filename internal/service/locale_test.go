package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

const trackedFile = "browser/newtab/newtab.ftl"

func reportWith(keys map[string][]string, keyDates map[string]time.Time) *domain.LocaleReport {
	locales := make(map[string]domain.LocaleStatus, len(keys))
	for locale, missing := range keys {
		locales[locale] = domain.LocaleStatus{
			MissingByFile: map[string][]string{trackedFile: missing},
		}
	}
	return &domain.LocaleReport{Locales: locales, KeyDates: keyDates}
}

func TestClassifyGraceWindowBoundary(t *testing.T) {
	betaStart := day("2024-01-01")
	releaseStart := day("2023-12-04")
	report := reportWith(
		map[string][]string{"de": {"newtab-topic-label"}},
		map[string]time.Time{"newtab-topic-label": day("2024-01-15")},
	)
	c := NewLocaleClassifier(trackedFile)

	// Three weeks after beta start: the beta fallback had its chance.
	got := c.Classify(report, betaStart, releaseStart, day("2024-01-22"))
	require.Contains(t, got, "de")
	assert.Equal(t, []string{"newtab-topic-label"}, got["de"].Missing)
	assert.Empty(t, got["de"].Pending)

	// Still inside the window: same key is only pending.
	got = c.Classify(report, betaStart, releaseStart, day("2024-01-10"))
	require.Contains(t, got, "de")
	assert.Empty(t, got["de"].Missing)
	assert.Equal(t, []string{"newtab-topic-label"}, got["de"].Pending)
}

func TestClassifyPreReleaseKeysAlwaysBlock(t *testing.T) {
	report := reportWith(
		map[string][]string{"fr": {"newtab-old-label"}},
		map[string]time.Time{"newtab-old-label": day("2023-11-01")},
	)
	got := NewLocaleClassifier(trackedFile).Classify(report, day("2024-01-01"), day("2023-12-04"), day("2024-01-02"))

	require.Contains(t, got, "fr")
	assert.Equal(t, []string{"newtab-old-label"}, got["fr"].Missing)
}

// Keys that landed between the release start and the beta start never
// age into blockers; they stay pending however old they get.
func TestClassifyBetweenWindowStaysPending(t *testing.T) {
	report := reportWith(
		map[string][]string{"it": {"newtab-mid-label"}},
		map[string]time.Time{"newtab-mid-label": day("2023-12-15")},
	)
	c := NewLocaleClassifier(trackedFile)

	for _, now := range []string{"2024-01-02", "2024-02-26", "2025-01-01"} {
		got := c.Classify(report, day("2024-01-01"), day("2023-12-04"), day(now))
		require.Contains(t, got, "it")
		assert.Empty(t, got["it"].Missing, "at now=%s", now)
		assert.Equal(t, []string{"newtab-mid-label"}, got["it"].Pending, "at now=%s", now)
	}
}

func TestClassifyPartitionsEveryKey(t *testing.T) {
	keys := []string{"k-old", "k-mid", "k-new", "k-undated"}
	report := reportWith(
		map[string][]string{"ja": keys},
		map[string]time.Time{
			"k-old": day("2023-10-01"),
			"k-mid": day("2023-12-20"),
			"k-new": day("2024-01-05"),
		},
	)
	got := NewLocaleClassifier(trackedFile).Classify(report, day("2024-01-01"), day("2023-12-04"), day("2024-01-10"))

	require.Contains(t, got, "ja")
	union := append(append([]string{}, got["ja"].Missing...), got["ja"].Pending...)
	assert.ElementsMatch(t, keys, union, "missing and pending must cover the original list")
	for _, m := range got["ja"].Missing {
		assert.NotContains(t, got["ja"].Pending, m)
	}
	assert.Contains(t, got["ja"].Missing, "k-undated", "a key without a landing date blocks")
}

func TestClassifyOmitsCompleteLocales(t *testing.T) {
	report := &domain.LocaleReport{
		Locales: map[string]domain.LocaleStatus{
			"de": {MissingByFile: map[string][]string{trackedFile: {"k1"}}},
			"nl": {MissingByFile: map[string][]string{}},
			"sv": {MissingByFile: map[string][]string{"some/other/file.ftl": {"k2"}}},
		},
		KeyDates: map[string]time.Time{"k1": day("2023-01-01"), "k2": day("2023-01-01")},
	}
	got := NewLocaleClassifier(trackedFile).Classify(report, day("2024-01-01"), day("2023-12-04"), day("2024-01-10"))

	assert.Contains(t, got, "de")
	assert.NotContains(t, got, "nl")
	assert.NotContains(t, got, "sv", "missing keys in untracked files do not count")
}
