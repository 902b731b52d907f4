package domain

import "time"

// Identifier is one logical commit named in both VCS namespaces.
// The git hash is the canonical one; the hg hash may be empty when the
// mapper could not be reached for a display-only derivation.
type Identifier struct {
	HgID  string `json:"hg_id"`
	GitID string `json:"git_id"`
}

// Direction selects which way a commit hash is translated.
type Direction int

const (
	HgToGit Direction = iota
	GitToHg
)

// String returns the stable form used in mapping-cache keys.
func (d Direction) String() string {
	if d == GitToHg {
		return "git-to-hg"
	}
	return "hg-to-git"
}

// InputKind says which namespace a raw user-supplied revision is in.
type InputKind int

const (
	InputHg InputKind = iota
	InputGit
)

// FileInfo is the last-modified metadata for one tracked file at a revision.
type FileInfo struct {
	Path         string    `json:"path"`
	LastModified time.Time `json:"last_modified"`
}

// SyncStatus constants.
const (
	SyncInSync      = "in-sync"
	SyncMainNewer   = "main-newer"
	SyncWebextNewer = "webext-newer"
)

// SyncVerdict describes the relationship between the canonical
// localization file and its packaged webext copy.
type SyncVerdict struct {
	Status   string `json:"status"` // in-sync, main-newer, webext-newer
	DayDelta int    `json:"day_delta"`
}
