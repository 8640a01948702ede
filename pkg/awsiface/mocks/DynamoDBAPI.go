package mocks

import (
	context "context"

	dynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	mock "github.com/stretchr/testify/mock"
)

// DynamoDBAPI is a mock type for the DynamoDBAPI type
type DynamoDBAPI struct {
	mock.Mock
}

// ListTables provides a mock function with given fields: ctx, params, optFns
func (_m *DynamoDBAPI) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *dynamodb.ListTablesOutput
	if rf, ok := ret.Get(0).(func(context.Context, *dynamodb.ListTablesInput) *dynamodb.ListTablesOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*dynamodb.ListTablesOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *dynamodb.ListTablesInput) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
