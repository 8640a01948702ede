package mocks

import (
	context "context"

	rds "github.com/aws/aws-sdk-go-v2/service/rds"
	mock "github.com/stretchr/testify/mock"
)

// RDSAPI is a mock type for the RDSAPI type
type RDSAPI struct {
	mock.Mock
}

// DescribeDBInstances provides a mock function with given fields: ctx, params, optFns
func (_m *RDSAPI) DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *rds.DescribeDBInstancesOutput
	if rf, ok := ret.Get(0).(func(context.Context, *rds.DescribeDBInstancesInput) *rds.DescribeDBInstancesOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*rds.DescribeDBInstancesOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *rds.DescribeDBInstancesInput) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DescribeDBClusters provides a mock function with given fields: ctx, params, optFns
func (_m *RDSAPI) DescribeDBClusters(ctx context.Context, params *rds.DescribeDBClustersInput, optFns ...func(*rds.Options)) (*rds.DescribeDBClustersOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *rds.DescribeDBClustersOutput
	if rf, ok := ret.Get(0).(func(context.Context, *rds.DescribeDBClustersInput) *rds.DescribeDBClustersOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*rds.DescribeDBClustersOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *rds.DescribeDBClustersInput) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
