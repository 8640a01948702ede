package report

import (
	"context"
	"io"

	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/formatter"
)

// FetchFunc enumerates the resources of one category
type FetchFunc func(ctx context.Context) ([]models.ResourceDescriptor, error)

// Category is one line of the inventory section
type Category struct {
	Kind  models.ResourceCategory
	Label string
	Fetch FetchFunc
}

// Sources bundles the enumeration calls behind each category
type Sources struct {
	Instances   FetchFunc
	DBInstances FetchFunc
	DBClusters  FetchFunc
	Buckets     FetchFunc
	Functions   FetchFunc
	Tables      FetchFunc
}

// Categories returns the six inventory categories in print order
func (s Sources) Categories() []Category {
	return []Category{
		{Kind: models.CategoryComputeInstance, Label: "EC2 Running Instances", Fetch: s.Instances},
		{Kind: models.CategoryDBInstance, Label: "RDS Instances", Fetch: s.DBInstances},
		{Kind: models.CategoryDBCluster, Label: "RDS Clusters", Fetch: s.DBClusters},
		{Kind: models.CategoryBucket, Label: "S3 Buckets", Fetch: s.Buckets},
		{Kind: models.CategoryFunction, Label: "Lambda Functions", Fetch: s.Functions},
		{Kind: models.CategoryTable, Label: "DynamoDB Tables", Fetch: s.Tables},
	}
}

// InventoryReporter prints the active resources of each category
type InventoryReporter struct {
	Categories []Category
	Progress   *Progress
}

// NewInventoryReporter creates an InventoryReporter over the standard six categories
func NewInventoryReporter(sources Sources, progress *Progress) *InventoryReporter {
	return &InventoryReporter{
		Categories: sources.Categories(),
		Progress:   progress,
	}
}

// Report queries each category in order and prints its line as soon as it is known.
// The first failing query stops the report; later categories are neither queried nor printed.
func (r *InventoryReporter) Report(ctx context.Context, w io.Writer) error {
	formatter.PrintInventoryHeading(w)

	for _, category := range r.Categories {
		var resources []models.ResourceDescriptor
		err := r.Progress.track(category.Label, func() (int, error) {
			var err error
			resources, err = category.Fetch(ctx)
			return len(resources), err
		})
		if err != nil {
			return err
		}

		formatter.PrintInventoryLine(w, category.Label, ActiveIdentifiers(resources))
	}

	return nil
}
