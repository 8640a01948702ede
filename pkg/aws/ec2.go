package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/awsiface"
	"github.com/younsl/last24h/pkg/utils"
)

// EC2Client struct for EC2 client
type EC2Client struct {
	api awsiface.EC2API
}

// NewEC2Client creates a new EC2Client
func NewEC2Client(cfg aws.Config) *EC2Client {
	return NewEC2ClientFromAPI(ec2.NewFromConfig(cfg))
}

// NewEC2ClientFromAPI wraps an existing EC2 API implementation
func NewEC2ClientFromAPI(api awsiface.EC2API) *EC2Client {
	return &EC2Client{api: api}
}

// GetRunningInstances returns EC2 instances reported by a running-state filtered DescribeInstances call
func (c *EC2Client) GetRunningInstances(ctx context.Context) ([]models.ResourceDescriptor, error) {
	// Filter only running instances
	filter := types.Filter{
		Name:   aws.String("instance-state-name"),
		Values: []string{string(types.InstanceStateNameRunning)},
	}

	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{filter},
	}

	result, err := c.api.DescribeInstances(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("error querying EC2 instances: %w", err)
	}

	instances := []models.ResourceDescriptor{}

	for _, reservation := range result.Reservations {
		for _, instance := range reservation.Instances {
			if !utils.NonEmpty(instance.InstanceId) {
				continue
			}

			state := ""
			if instance.State != nil {
				state = string(instance.State.Name)
			}

			instances = append(instances, models.ResourceDescriptor{
				Category:   models.CategoryComputeInstance,
				Identifier: *instance.InstanceId,
				Status:     state,
			})
		}
	}

	return instances, nil
}
