package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/awsiface"
)

// DynamoDBClient struct for DynamoDB client
type DynamoDBClient struct {
	api awsiface.DynamoDBAPI
}

// NewDynamoDBClient creates a new DynamoDBClient
func NewDynamoDBClient(cfg aws.Config) *DynamoDBClient {
	return NewDynamoDBClientFromAPI(dynamodb.NewFromConfig(cfg))
}

// NewDynamoDBClientFromAPI wraps an existing DynamoDB API implementation
func NewDynamoDBClientFromAPI(api awsiface.DynamoDBAPI) *DynamoDBClient {
	return &DynamoDBClient{api: api}
}

// GetTables returns the table names from a single ListTables call.
// ListTables carries no status, so descriptors have an empty Status.
func (c *DynamoDBClient) GetTables(ctx context.Context) ([]models.ResourceDescriptor, error) {
	result, err := c.api.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		return nil, fmt.Errorf("error listing DynamoDB tables: %w", err)
	}

	tables := []models.ResourceDescriptor{}
	for _, name := range result.TableNames {
		if name == "" {
			continue
		}
		tables = append(tables, models.ResourceDescriptor{
			Category:   models.CategoryTable,
			Identifier: name,
		})
	}

	return tables, nil
}
