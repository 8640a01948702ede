package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/younsl/last24h/internal/models"
	"github.com/younsl/last24h/pkg/awsiface"
	"github.com/younsl/last24h/pkg/utils"
)

// S3Client struct for S3 client
type S3Client struct {
	api awsiface.S3API
}

// NewS3Client creates a new S3Client
func NewS3Client(cfg aws.Config) *S3Client {
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true // Use path-style addressing which is more reliable
	})
	return NewS3ClientFromAPI(s3Client)
}

// NewS3ClientFromAPI wraps an existing S3 API implementation
func NewS3ClientFromAPI(api awsiface.S3API) *S3Client {
	return &S3Client{api: api}
}

// GetBuckets returns all buckets owned by the account.
// ListBuckets is global, so buckets from every region are included.
func (c *S3Client) GetBuckets(ctx context.Context) ([]models.ResourceDescriptor, error) {
	result, err := c.api.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("error listing S3 buckets: %w", err)
	}

	buckets := []models.ResourceDescriptor{}
	for _, bucket := range result.Buckets {
		if !utils.NonEmpty(bucket.Name) {
			continue
		}
		buckets = append(buckets, models.ResourceDescriptor{
			Category:   models.CategoryBucket,
			Identifier: *bucket.Name,
		})
	}

	return buckets, nil
}
