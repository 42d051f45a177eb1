package audit

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/fieldguard/internal/fieldcheck"
	"github.com/gabapcia/fieldguard/internal/pkg/types"
)

var (
	// ErrReportNotFound is returned when no report exists for an id.
	ErrReportNotFound = errors.New("report not found")

	// ErrStorageDisabled is returned by lookups when the service runs without a ReportStorage.
	ErrStorageDisabled = errors.New("report storage is disabled")
)

// Report is the outcome of one validation pass over a manifest.
type Report struct {
	ID         string                 `json:"id"`
	Source     string                 `json:"source"`
	CheckedAt  time.Time              `json:"checked_at"`
	Fields     int                    `json:"fields"`
	Violations []fieldcheck.Violation `json:"violations"`
}

// Passed reports whether the pass produced no violations.
func (r Report) Passed() bool {
	return len(r.Violations) == 0
}

// ByPath groups violation messages by property path.
func (r Report) ByPath() map[string][]string {
	grouped := types.NewDefaultMap[string](func() []string { return nil })
	for _, v := range r.Violations {
		grouped.Update(v.Path, func(msgs []string) []string {
			return append(msgs, v.Message)
		})
	}

	return grouped.ToMap()
}

// ReportStorage persists reports.
type ReportStorage interface {
	// SaveReport stores r under r.ID, replacing any previous value.
	SaveReport(ctx context.Context, r Report) error

	// LoadReport returns the report stored under id, or ErrReportNotFound.
	LoadReport(ctx context.Context, id string) (Report, error)
}
