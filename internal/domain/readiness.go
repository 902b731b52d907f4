package domain

// ReadinessResult is the assembled verdict for one assessed revision.
// On a failed assessment the identifier still carries whatever was
// resolved before the failure, so the caller can show which commit was
// being checked.
type ReadinessResult struct {
	Identifier Identifier                `json:"identifier"`
	CI         *PushResult               `json:"ci,omitempty"`
	MainFile   *FileInfo                 `json:"main_file,omitempty"`
	WebextFile *FileInfo                 `json:"webext_file,omitempty"`
	FileSync   *SyncVerdict              `json:"file_sync,omitempty"`
	MergeDates MergeDates                `json:"merge_dates"`
	Locales    map[string]Classification `json:"locales,omitempty"`
}
