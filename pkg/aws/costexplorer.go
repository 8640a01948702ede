package aws

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/awsiface"
	"github.com/younsl/last24h/pkg/utils"
)

// CostMetric is the Cost Explorer metric the report aggregates
const CostMetric = "UnblendedCost"

// CostExplorerClient struct for Cost Explorer client
type CostExplorerClient struct {
	api awsiface.CostExplorerAPI
}

// NewCostExplorerClient creates a new CostExplorerClient pinned to us-east-1
func NewCostExplorerClient(cfg aws.Config) *CostExplorerClient {
	client := costexplorer.NewFromConfig(cfg, func(o *costexplorer.Options) {
		o.Region = utils.CostExplorerRegion
	})
	return NewCostExplorerClientFromAPI(client)
}

// NewCostExplorerClientFromAPI wraps an existing Cost Explorer API implementation
func NewCostExplorerClientFromAPI(api awsiface.CostExplorerAPI) *CostExplorerClient {
	return &CostExplorerClient{api: api}
}

// GetDailyCostsByService returns the unblended cost of every service for [start, end).
// Groups are returned in API order and are not filtered.
func (c *CostExplorerClient) GetDailyCostsByService(ctx context.Context, start, end string) ([]models.CostLineItem, error) {
	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityDaily,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start),
			End:   aws.String(end),
		},
		Metrics: []string{CostMetric},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	output, err := c.api.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("error querying Cost Explorer: %w", err)
	}

	items := []models.CostLineItem{}
	if len(output.ResultsByTime) == 0 {
		return items, nil
	}

	for _, group := range output.ResultsByTime[0].Groups {
		item, err := toCostLineItem(group)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// toCostLineItem converts a Cost Explorer group into a line item
func toCostLineItem(group types.Group) (models.CostLineItem, error) {
	service := ""
	if len(group.Keys) > 0 {
		service = group.Keys[0]
	}

	metric, ok := group.Metrics[CostMetric]
	if !ok || metric.Amount == nil {
		return models.CostLineItem{}, fmt.Errorf("missing %s for service %q", CostMetric, service)
	}

	amount, err := strconv.ParseFloat(*metric.Amount, 64)
	if err != nil {
		return models.CostLineItem{}, fmt.Errorf("error parsing %s for service %q: %w", CostMetric, service, err)
	}

	return models.CostLineItem{
		Service: service,
		Amount:  amount,
		Unit:    utils.SafeDeref(metric.Unit),
	}, nil
}
