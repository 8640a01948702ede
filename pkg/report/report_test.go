package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younsl/last24h/internal/models"
)

type fakeCostSource struct {
	items      []models.CostLineItem
	err        error
	start, end string
}

func (f *fakeCostSource) GetDailyCostsByService(_ context.Context, start, end string) ([]models.CostLineItem, error) {
	f.start, f.end = start, end
	return f.items, f.err
}

// recorder returns a FetchFunc that records whether it was called
func recorder(called *bool, resources []models.ResourceDescriptor, err error) FetchFunc {
	return func(context.Context) ([]models.ResourceDescriptor, error) {
		*called = true
		return resources, err
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 3, 2, 0, 30, 0, 0, time.UTC)
}

func TestCostReporter(t *testing.T) {
	source := &fakeCostSource{items: []models.CostLineItem{
		{Service: "ComputeX", Amount: 0},
		{Service: "StorageY", Amount: 1.25},
		{Service: "Tax", Amount: 0.000049},
		{Service: "Credits", Amount: -3.5},
	}}
	reporter := &CostReporter{Source: source, Now: fixedNow}

	var out bytes.Buffer
	require.NoError(t, reporter.Report(context.Background(), &out))

	assert.Equal(t, "2024-03-01", source.start)
	assert.Equal(t, "2024-03-02", source.end)
	assert.Equal(t, "\n📊 AWS COSTS in last 24h:\n"+
		"  - StorageY: $1.2500\n"+
		"  - Tax: $0.0000\n", out.String())
	assert.NotContains(t, out.String(), "ComputeX")
	assert.NotContains(t, out.String(), "Credits")
}

func TestCostReporterNoGroups(t *testing.T) {
	reporter := &CostReporter{Source: &fakeCostSource{}, Now: fixedNow}

	var out bytes.Buffer
	require.NoError(t, reporter.Report(context.Background(), &out))
	assert.Equal(t, "\n📊 AWS COSTS in last 24h:\n", out.String())
}

func TestCostReporterError(t *testing.T) {
	denied := errors.New("AccessDenied")
	reporter := &CostReporter{Source: &fakeCostSource{err: denied}, Now: fixedNow}

	var out bytes.Buffer
	err := reporter.Report(context.Background(), &out)

	assert.ErrorIs(t, err, denied)
	assert.Empty(t, out.String())
}

func TestInventoryReporter(t *testing.T) {
	var called [6]bool
	sources := Sources{
		Instances: recorder(&called[0], []models.ResourceDescriptor{
			{Category: models.CategoryComputeInstance, Identifier: "i-1", Status: "running"},
			{Category: models.CategoryComputeInstance, Identifier: "i-2", Status: "stopped"},
		}, nil),
		DBInstances: recorder(&called[1], []models.ResourceDescriptor{
			{Category: models.CategoryDBInstance, Identifier: "orders", Status: "stopped"},
		}, nil),
		DBClusters: recorder(&called[2], []models.ResourceDescriptor{
			{Category: models.CategoryDBCluster, Identifier: "aurora-a", Status: "available"},
			{Category: models.CategoryDBCluster, Identifier: "aurora-b", Status: "available"},
		}, nil),
		Buckets: recorder(&called[3], []models.ResourceDescriptor{}, nil),
		Functions: recorder(&called[4], []models.ResourceDescriptor{
			{Category: models.CategoryFunction, Identifier: "fn-a", Status: "Inactive"},
		}, nil),
		Tables: recorder(&called[5], nil, nil),
	}

	var out bytes.Buffer
	require.NoError(t, NewInventoryReporter(sources, nil).Report(context.Background(), &out))

	assert.Equal(t, "\n🖥️ CURRENTLY RUNNING RESOURCES:\n"+
		"  - EC2 Running Instances: i-1\n"+
		"  - RDS Instances: None\n"+
		"  - RDS Clusters: aurora-a, aurora-b\n"+
		"  - S3 Buckets: None\n"+
		"  - Lambda Functions: fn-a\n"+
		"  - DynamoDB Tables: None\n", out.String())
	for i, c := range called {
		assert.True(t, c, "category %d was not queried", i)
	}
}

func TestInventoryReporterStopsAtFirstFailure(t *testing.T) {
	var called [6]bool
	throttled := errors.New("ThrottlingException")
	sources := Sources{
		Instances:   recorder(&called[0], nil, nil),
		DBInstances: recorder(&called[1], nil, nil),
		DBClusters:  recorder(&called[2], nil, throttled),
		Buckets:     recorder(&called[3], nil, nil),
		Functions:   recorder(&called[4], nil, nil),
		Tables:      recorder(&called[5], nil, nil),
	}

	var out bytes.Buffer
	err := NewInventoryReporter(sources, nil).Report(context.Background(), &out)

	assert.ErrorIs(t, err, throttled)
	assert.Equal(t, [6]bool{true, true, true, false, false, false}, called)
	assert.Contains(t, out.String(), "RDS Instances: None")
	assert.NotContains(t, out.String(), "RDS Clusters")
	assert.NotContains(t, out.String(), "S3 Buckets")
	assert.NotContains(t, out.String(), "DynamoDB Tables")
}

func TestRun(t *testing.T) {
	var bucketsCalled bool
	sources := Sources{
		Instances:   func(context.Context) ([]models.ResourceDescriptor, error) { return nil, nil },
		DBInstances: func(context.Context) ([]models.ResourceDescriptor, error) { return nil, nil },
		DBClusters:  func(context.Context) ([]models.ResourceDescriptor, error) { return nil, nil },
		Buckets:     recorder(&bucketsCalled, nil, nil),
		Functions:   func(context.Context) ([]models.ResourceDescriptor, error) { return nil, nil },
		Tables:      func(context.Context) ([]models.ResourceDescriptor, error) { return nil, nil },
	}

	t.Run("prints every section in order", func(t *testing.T) {
		cost := &CostReporter{Source: &fakeCostSource{items: []models.CostLineItem{{Service: "StorageY", Amount: 1.25}}}, Now: fixedNow}

		var out bytes.Buffer
		require.NoError(t, Run(context.Background(), &out, cost, NewInventoryReporter(sources, nil)))

		text := out.String()
		banner := bytes.Index(out.Bytes(), []byte("🔎 AWS 24h Resource & Cost Summary"))
		costs := bytes.Index(out.Bytes(), []byte("📊 AWS COSTS in last 24h:"))
		resources := bytes.Index(out.Bytes(), []byte("🖥️ CURRENTLY RUNNING RESOURCES:"))
		assert.Equal(t, 0, banner)
		assert.Less(t, banner, costs)
		assert.Less(t, costs, resources)
		assert.Contains(t, text, "  - StorageY: $1.2500\n")
		assert.True(t, strings.HasPrefix(text, "🔎 AWS 24h Resource & Cost Summary\n\n\n📊 AWS COSTS in last 24h:\n"),
			"two blank lines separate the banner from the cost heading")
		assert.True(t, bucketsCalled)
	})

	t.Run("cost failure aborts the inventory", func(t *testing.T) {
		bucketsCalled = false
		denied := errors.New("AccessDeniedException")
		cost := &CostReporter{Source: &fakeCostSource{err: denied}, Now: fixedNow}

		var out bytes.Buffer
		err := Run(context.Background(), &out, cost, NewInventoryReporter(sources, nil))

		assert.ErrorIs(t, err, denied)
		assert.False(t, bucketsCalled)
		assert.Equal(t, "🔎 AWS 24h Resource & Cost Summary\n\n", out.String())
	})
}
