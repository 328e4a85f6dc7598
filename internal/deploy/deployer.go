/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package deploy orchestrates a function deployment end to end: package the
// source, upload the artifact, apply the CloudFormation stack, and seed the
// source bucket with a test object.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/orien/lambdaroo/internal/archive"
	"github.com/orien/lambdaroo/internal/aws"
	"github.com/orien/lambdaroo/internal/model"
	"github.com/orien/lambdaroo/internal/prompt"
)

// Deployer defines the interface for deployment operations
type Deployer interface {
	Deploy(ctx context.Context, dep *model.Deployment) error
}

// StackDeployer implements Deployer using AWS CloudFormation and S3
type StackDeployer struct {
	cfnOps      aws.CloudFormationOperations
	s3Ops       aws.S3Operations
	packager    archive.Packager
	out         io.Writer
	autoApprove bool
}

// NewStackDeployer creates a deployer from an AWS client
func NewStackDeployer(client aws.Client) *StackDeployer {
	return &StackDeployer{
		cfnOps:   client.NewCloudFormationOperations(),
		s3Ops:    client.NewS3Operations(),
		packager: archive.NewZipPackager(),
		out:      os.Stdout,
	}
}

// NewStackDeployerWithOperations creates a deployer with explicit
// collaborators (for testing)
func NewStackDeployerWithOperations(cfnOps aws.CloudFormationOperations, s3Ops aws.S3Operations, packager archive.Packager) *StackDeployer {
	return &StackDeployer{
		cfnOps:   cfnOps,
		s3Ops:    s3Ops,
		packager: packager,
		out:      os.Stdout,
	}
}

// SetAutoApprove skips the confirmation prompt before applying the stack
func (d *StackDeployer) SetAutoApprove(autoApprove bool) {
	d.autoApprove = autoApprove
}

// SetOutput redirects progress output
func (d *StackDeployer) SetOutput(w io.Writer) {
	d.out = w
}

// Deploy runs the full deployment pipeline for the given deployment
func (d *StackDeployer) Deploy(ctx context.Context, dep *model.Deployment) error {
	if err := d.packageFunction(dep); err != nil {
		return err
	}

	if err := d.uploadCode(ctx, dep); err != nil {
		return err
	}

	applied, err := d.applyStack(ctx, dep)
	if err != nil {
		return err
	}

	if applied {
		fmt.Fprintf(d.out, "Waiting for stack %s to reach a terminal state...\n", dep.StackName)
		if err := d.cfnOps.WaitForStackCompletion(ctx, dep.StackName); err != nil {
			return err
		}
		fmt.Fprintf(d.out, "Stack %s deployed successfully\n", dep.StackName)
	}

	return d.seedTestObject(ctx, dep)
}

// packageFunction zips the function source into the deployment artifact
func (d *StackDeployer) packageFunction(dep *model.Deployment) error {
	fmt.Fprintf(d.out, "Packaging %s into %s\n", dep.FunctionDir, dep.ArchivePath)

	if err := d.packager.Package(dep.FunctionDir, dep.ArchivePath); err != nil {
		return fmt.Errorf("failed to package function: %w", err)
	}

	return nil
}

// uploadCode ensures the code bucket exists and uploads the artifact. An
// object already present at the target key is assumed current and the upload
// is skipped.
func (d *StackDeployer) uploadCode(ctx context.Context, dep *model.Deployment) error {
	exists, err := d.s3Ops.BucketExists(ctx, dep.CodeBucket)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(d.out, "Creating code bucket %s\n", dep.CodeBucket)
		if err := d.s3Ops.CreateBucket(ctx, dep.CodeBucket, dep.Region); err != nil {
			return err
		}
	}

	present, err := d.s3Ops.ObjectExists(ctx, dep.CodeBucket, dep.CodeKey)
	if err != nil {
		return err
	}
	if present {
		fmt.Fprintf(d.out, "Code object s3://%s/%s already exists, skipping upload\n", dep.CodeBucket, dep.CodeKey)
		return nil
	}

	fmt.Fprintf(d.out, "Uploading %s to s3://%s/%s\n", dep.ArchivePath, dep.CodeBucket, dep.CodeKey)
	return d.s3Ops.UploadFile(ctx, dep.CodeBucket, dep.CodeKey, dep.ArchivePath)
}

// applyStack creates or updates the stack. It returns whether an operation
// was started: false means the deployed stack already matches and there is
// nothing to wait for.
func (d *StackDeployer) applyStack(ctx context.Context, dep *model.Deployment) (bool, error) {
	exists, err := d.cfnOps.StackExists(ctx, dep.StackName)
	if err != nil {
		return false, err
	}

	action := "Create"
	if exists {
		action = "Update"
	}

	if !d.autoApprove {
		confirmed, err := prompt.Confirm(fmt.Sprintf("%s stack %s?", action, dep.StackName))
		if err != nil {
			return false, fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			return false, fmt.Errorf("deployment of stack %s cancelled by user", dep.StackName)
		}
	}

	if !exists {
		fmt.Fprintf(d.out, "Creating stack %s\n", dep.StackName)
		err = d.cfnOps.CreateStack(ctx, aws.CreateStackInput{
			StackName:    dep.StackName,
			TemplateBody: dep.TemplateBody,
			Parameters:   toParameters(dep.Parameters),
			Tags:         dep.Tags,
			Capabilities: dep.Capabilities,
		})
		if err != nil {
			return false, err
		}
		return true, nil
	}

	fmt.Fprintf(d.out, "Updating stack %s\n", dep.StackName)
	err = d.cfnOps.UpdateStack(ctx, aws.UpdateStackInput{
		StackName:    dep.StackName,
		TemplateBody: dep.TemplateBody,
		Parameters:   toParameters(dep.Parameters),
		Tags:         dep.Tags,
		Capabilities: dep.Capabilities,
	})
	if errors.Is(err, aws.ErrNoChanges) {
		fmt.Fprintf(d.out, "No changes to apply to stack %s\n", dep.StackName)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// seedTestObject uploads the configured test file into the source bucket so
// the replication function has something to copy
func (d *StackDeployer) seedTestObject(ctx context.Context, dep *model.Deployment) error {
	if dep.TestFile == "" || dep.SourceBucket == "" {
		return nil
	}

	key := filepath.Base(dep.TestFile)
	fmt.Fprintf(d.out, "Uploading test object %s to s3://%s/%s\n", dep.TestFile, dep.SourceBucket, key)

	if err := d.s3Ops.UploadFile(ctx, dep.SourceBucket, key, dep.TestFile); err != nil {
		return fmt.Errorf("failed to seed test object: %w", err)
	}

	return nil
}

// toParameters converts a parameter map into the ordered form the stack
// operations take. Keys are sorted so repeated deployments send identical
// requests.
func toParameters(params map[string]string) []aws.Parameter {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]aws.Parameter, len(keys))
	for i, k := range keys {
		result[i] = aws.Parameter{Key: k, Value: params[k]}
	}
	return result
}
