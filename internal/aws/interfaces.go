/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// CloudFormationClient defines the interface for CloudFormation client operations
// This allows for easier testing with mock implementations
type CloudFormationClient interface {
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	ValidateTemplate(ctx context.Context, params *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error)
}

// S3Client defines the interface for S3 client operations used by lambdaroo
type S3Client interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// Ensure that the actual AWS clients implement our interfaces
var (
	_ CloudFormationClient = (*cloudformation.Client)(nil)
	_ S3Client             = (*s3.Client)(nil)
)

// Ensure that the default implementations satisfy the operations interfaces
var (
	_ CloudFormationOperations = (*DefaultCloudFormationOperations)(nil)
	_ S3Operations             = (*DefaultS3Operations)(nil)
	_ Client                   = (*DefaultClient)(nil)
)

// CloudFormationOperations defines the interface for CloudFormation operations
type CloudFormationOperations interface {
	CreateStack(ctx context.Context, input CreateStackInput) error
	UpdateStack(ctx context.Context, input UpdateStackInput) error
	DeleteStack(ctx context.Context, input DeleteStackInput) error
	GetStack(ctx context.Context, stackName string) (*Stack, error)
	StackExists(ctx context.Context, stackName string) (bool, error)
	ValidateTemplate(ctx context.Context, templateBody string) error
	WaitForStackCompletion(ctx context.Context, stackName string) error
	WaitForStackDeletion(ctx context.Context, stackName string) error
}

// S3Operations defines the interface for the object storage operations lambdaroo performs
type S3Operations interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	CreateBucket(ctx context.Context, bucket, region string) error
	ObjectExists(ctx context.Context, bucket, key string) (bool, error)
	UploadFile(ctx context.Context, bucket, key, path string) error
	CopyObject(ctx context.Context, srcBucket, key, destBucket string) error
}
