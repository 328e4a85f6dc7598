/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// DefaultS3Operations provides S3-specific operations
type DefaultS3Operations struct {
	client S3Client
}

// NewS3OperationsWithClient creates operations with a custom client (for testing)
func NewS3OperationsWithClient(client S3Client) *DefaultS3Operations {
	return &DefaultS3Operations{
		client: client,
	}
}

// BucketExists checks if a bucket exists and is accessible
func (so *DefaultS3Operations) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := so.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		if isS3NotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if bucket %s exists: %w", bucket, err)
	}

	return true, nil
}

// CreateBucket creates a bucket in the given region. Regions other than
// us-east-1 require an explicit location constraint; us-east-1 rejects one.
func (so *DefaultS3Operations) CreateBucket(ctx context.Context, bucket, region string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	_, err := so.client.CreateBucket(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}

	return nil
}

// ObjectExists checks if an object exists at the given key
func (so *DefaultS3Operations) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := so.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		if isS3NotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if object s3://%s/%s exists: %w", bucket, key, err)
	}

	return true, nil
}

// UploadFile uploads a local file to the given bucket and key
func (so *DefaultS3Operations) UploadFile(ctx context.Context, bucket, key, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for upload: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	_, err = so.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to s3://%s/%s: %w", path, bucket, key, err)
	}

	return nil
}

// CopyObject copies an object from one bucket to another under the same key
func (so *DefaultS3Operations) CopyObject(ctx context.Context, srcBucket, key, destBucket string) error {
	_, err := so.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(destBucket),
		Key:        aws.String(key),
		CopySource: aws.String(fmt.Sprintf("%s/%s", srcBucket, key)),
	})
	if err != nil {
		return fmt.Errorf("failed to copy s3://%s/%s to bucket %s: %w", srcBucket, key, destBucket, err)
	}

	return nil
}

// isS3NotFoundError checks if the error indicates a missing bucket or object
func isS3NotFoundError(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var noSuchBucket *types.NoSuchBucket
	if errors.As(err, &noSuchBucket) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}

	return false
}
