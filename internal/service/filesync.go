package service

import (
	"math"

	"github.com/relman-tools/trainhop-readiness/internal/domain"
)

// CompareSync classifies the relationship between the canonical
// localization file and its packaged webext copy by whole-day delta of
// their last-modified timestamps. Pure function, no I/O.
func CompareSync(main, webext domain.FileInfo) domain.SyncVerdict {
	delta := main.LastModified.Sub(webext.LastModified)
	days := int(math.Round(delta.Hours() / 24))

	verdict := domain.SyncVerdict{DayDelta: days}
	switch {
	case days > 0:
		verdict.Status = domain.SyncMainNewer
	case days < 0:
		verdict.Status = domain.SyncWebextNewer
	default:
		verdict.Status = domain.SyncInSync
	}
	return verdict
}
