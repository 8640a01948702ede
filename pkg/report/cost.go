package report

import (
	"context"
	"io"
	"time"

	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/formatter"
	"github.com/younsl/last24h/pkg/utils"
)

// CostSource returns per-service costs for a [start, end) date window
type CostSource interface {
	GetDailyCostsByService(ctx context.Context, start, end string) ([]models.CostLineItem, error)
}

// CostReporter prints the previous UTC day's spend per service
type CostReporter struct {
	Source   CostSource
	Now      func() time.Time // defaults to time.Now
	Progress *Progress
}

// NewCostReporter creates a CostReporter using the wall clock
func NewCostReporter(source CostSource, progress *Progress) *CostReporter {
	return &CostReporter{
		Source:   source,
		Now:      time.Now,
		Progress: progress,
	}
}

// Report queries the billing window once and prints every service with a positive cost.
// An empty result prints only the heading.
func (r *CostReporter) Report(ctx context.Context, w io.Writer) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	start, end := utils.CostWindow(now())

	var items []models.CostLineItem
	err := r.Progress.track("Cost Explorer "+start+".."+end, func() (int, error) {
		var err error
		items, err = r.Source.GetDailyCostsByService(ctx, start, end)
		return len(items), err
	})
	if err != nil {
		return err
	}

	formatter.PrintCostHeading(w)
	for _, item := range PositiveCosts(items) {
		formatter.PrintCostLine(w, item)
	}

	return nil
}
