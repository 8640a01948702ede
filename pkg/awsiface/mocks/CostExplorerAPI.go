package mocks

import (
	context "context"

	costexplorer "github.com/aws/aws-sdk-go-v2/service/costexplorer"
	mock "github.com/stretchr/testify/mock"
)

// CostExplorerAPI is a mock type for the CostExplorerAPI type
type CostExplorerAPI struct {
	mock.Mock
}

// GetCostAndUsage provides a mock function with given fields: ctx, params, optFns
func (_m *CostExplorerAPI) GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *costexplorer.GetCostAndUsageOutput
	if rf, ok := ret.Get(0).(func(context.Context, *costexplorer.GetCostAndUsageInput) *costexplorer.GetCostAndUsageOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*costexplorer.GetCostAndUsageOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *costexplorer.GetCostAndUsageInput) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
