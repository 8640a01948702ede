package mocks

import (
	context "context"

	lambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	mock "github.com/stretchr/testify/mock"
)

// LambdaAPI is a mock type for the LambdaAPI type
type LambdaAPI struct {
	mock.Mock
}

// ListFunctions provides a mock function with given fields: ctx, params, optFns
func (_m *LambdaAPI) ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *lambda.ListFunctionsOutput
	if rf, ok := ret.Get(0).(func(context.Context, *lambda.ListFunctionsInput) *lambda.ListFunctionsOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*lambda.ListFunctionsOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *lambda.ListFunctionsInput) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
