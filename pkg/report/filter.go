package report

import (
	"github.com/younsl/last24h/internal/models"
)

// activeStatus maps each filtered category to the status it must report.
// Categories missing from the map have no activity filter.
var activeStatus = map[models.ResourceCategory]string{
	models.CategoryComputeInstance: "running",
	models.CategoryDBInstance:      "available",
	models.CategoryDBCluster:       "available",
}

// IsActive reports whether a resource should appear in the inventory
func IsActive(r models.ResourceDescriptor) bool {
	want, filtered := activeStatus[r.Category]
	if !filtered {
		return true
	}
	return r.Status == want
}

// ActiveIdentifiers returns the identifiers of active resources in input order
func ActiveIdentifiers(resources []models.ResourceDescriptor) []string {
	ids := []string{}
	for _, r := range resources {
		if IsActive(r) {
			ids = append(ids, r.Identifier)
		}
	}
	return ids
}

// PositiveCosts drops line items with a zero or negative amount
func PositiveCosts(items []models.CostLineItem) []models.CostLineItem {
	positive := []models.CostLineItem{}
	for _, item := range items {
		if item.Amount > 0 {
			positive = append(positive, item)
		}
	}
	return positive
}
