package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/awsiface"
	"github.com/younsl/last24h/pkg/utils"
)

// LambdaClient struct for Lambda client
type LambdaClient struct {
	api awsiface.LambdaAPI
}

// NewLambdaClient creates a new LambdaClient
func NewLambdaClient(cfg aws.Config) *LambdaClient {
	return NewLambdaClientFromAPI(lambda.NewFromConfig(cfg))
}

// NewLambdaClientFromAPI wraps an existing Lambda API implementation
func NewLambdaClientFromAPI(api awsiface.LambdaAPI) *LambdaClient {
	return &LambdaClient{api: api}
}

// GetFunctions returns the functions from a single ListFunctions page
func (c *LambdaClient) GetFunctions(ctx context.Context) ([]models.ResourceDescriptor, error) {
	// A single page holds at most 50 functions; NextMarker is not followed
	result, err := c.api.ListFunctions(ctx, &lambda.ListFunctionsInput{})
	if err != nil {
		return nil, fmt.Errorf("error listing Lambda functions: %w", err)
	}

	functions := []models.ResourceDescriptor{}
	for _, function := range result.Functions {
		if !utils.NonEmpty(function.FunctionName) {
			continue
		}
		functions = append(functions, models.ResourceDescriptor{
			Category:   models.CategoryFunction,
			Identifier: *function.FunctionName,
			Status:     string(function.State),
		})
	}

	return functions, nil
}
