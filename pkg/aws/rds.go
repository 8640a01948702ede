package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/awsiface"
	"github.com/younsl/last24h/pkg/utils"
)

// RDSClient struct for RDS client
type RDSClient struct {
	api awsiface.RDSAPI
}

// NewRDSClient creates a new RDSClient
func NewRDSClient(cfg aws.Config) *RDSClient {
	return NewRDSClientFromAPI(rds.NewFromConfig(cfg))
}

// NewRDSClientFromAPI wraps an existing RDS API implementation
func NewRDSClientFromAPI(api awsiface.RDSAPI) *RDSClient {
	return &RDSClient{api: api}
}

// GetDBInstances returns every DB instance from a single DescribeDBInstances call
func (c *RDSClient) GetDBInstances(ctx context.Context) ([]models.ResourceDescriptor, error) {
	result, err := c.api.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("error describing RDS instances: %w", err)
	}

	instances := []models.ResourceDescriptor{}
	for _, db := range result.DBInstances {
		if !utils.NonEmpty(db.DBInstanceIdentifier) {
			continue
		}
		instances = append(instances, models.ResourceDescriptor{
			Category:   models.CategoryDBInstance,
			Identifier: *db.DBInstanceIdentifier,
			Status:     utils.SafeDeref(db.DBInstanceStatus),
		})
	}

	return instances, nil
}

// GetDBClusters returns every DB cluster (Aurora, Multi-AZ) from a single DescribeDBClusters call
func (c *RDSClient) GetDBClusters(ctx context.Context) ([]models.ResourceDescriptor, error) {
	result, err := c.api.DescribeDBClusters(ctx, &rds.DescribeDBClustersInput{})
	if err != nil {
		return nil, fmt.Errorf("error describing RDS clusters: %w", err)
	}

	clusters := []models.ResourceDescriptor{}
	for _, cluster := range result.DBClusters {
		if !utils.NonEmpty(cluster.DBClusterIdentifier) {
			continue
		}
		clusters = append(clusters, models.ResourceDescriptor{
			Category:   models.CategoryDBCluster,
			Identifier: *cluster.DBClusterIdentifier,
			Status:     utils.SafeDeref(cluster.Status),
		})
	}

	return clusters, nil
}
