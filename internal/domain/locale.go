package domain

import "time"

// LocaleStatus is one locale's completeness data from the report.
type LocaleStatus struct {
	// MissingByFile maps a tracked source file to the Fluent keys the
	// locale has not translated yet.
	MissingByFile map[string][]string `json:"missing"`
}

// LocaleReport is the per-locale missing-string report plus the global
// map of when each Fluent key first landed.
type LocaleReport struct {
	Locales  map[string]LocaleStatus `json:"locales"`
	KeyDates map[string]time.Time    `json:"key_dates"`
}

// Classification splits a locale's untranslated keys into hard
// blockers and keys still inside the post-beta grace window. The two
// lists are disjoint and together cover the locale's missing-key list
// for the tracked file.
type Classification struct {
	Missing []string `json:"missing"`
	Pending []string `json:"pending"`
}
