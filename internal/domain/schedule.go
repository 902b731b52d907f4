package domain

import "time"

// ChannelSchedule is the raw per-channel entry from the release
// calendar. Dates stay as calendar-date strings until the gateway
// parses them; the calendar never publishes a release merge date, only
// the date the first beta of that version was built.
type ChannelSchedule struct {
	Version  string `json:"version"`
	MergeDay string `json:"merge_day"`
	Beta1    string `json:"beta_1"`
}

// MergeDates holds the channel start dates used by locale
// classification. Either field is nil when the calendar fetch for it
// failed; an operator-supplied date fills the gap before
// classification runs.
type MergeDates struct {
	BetaStart    *time.Time `json:"beta_start"`
	ReleaseStart *time.Time `json:"release_start"`
}
