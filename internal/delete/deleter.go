/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package delete removes the deployed stack.
package delete

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/orien/lambdaroo/internal/aws"
	"github.com/orien/lambdaroo/internal/prompt"
)

// Deleter defines the interface for stack deletion operations
type Deleter interface {
	DeleteStack(ctx context.Context, stackName string) error
}

// StackDeleter implements Deleter using AWS CloudFormation
type StackDeleter struct {
	cfnOps      aws.CloudFormationOperations
	out         io.Writer
	autoApprove bool
}

// NewStackDeleter creates a deleter from an AWS client
func NewStackDeleter(client aws.Client) *StackDeleter {
	return &StackDeleter{
		cfnOps: client.NewCloudFormationOperations(),
		out:    os.Stdout,
	}
}

// NewStackDeleterWithOperations creates a deleter with explicit operations
// (for testing)
func NewStackDeleterWithOperations(cfnOps aws.CloudFormationOperations) *StackDeleter {
	return &StackDeleter{
		cfnOps: cfnOps,
		out:    os.Stdout,
	}
}

// SetAutoApprove skips the confirmation prompt before deletion
func (d *StackDeleter) SetAutoApprove(autoApprove bool) {
	d.autoApprove = autoApprove
}

// SetOutput redirects progress output
func (d *StackDeleter) SetOutput(w io.Writer) {
	d.out = w
}

// DeleteStack deletes a CloudFormation stack with confirmation and waits for
// the deletion to finish. A stack that does not exist is not an error.
func (d *StackDeleter) DeleteStack(ctx context.Context, stackName string) error {
	exists, err := d.cfnOps.StackExists(ctx, stackName)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(d.out, "Stack %s does not exist, skipping deletion\n", stackName)
		return nil
	}

	stack, err := d.cfnOps.GetStack(ctx, stackName)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Stack: %s\n", stack.Name)
	fmt.Fprintf(d.out, "Status: %s\n", stack.Status)
	fmt.Fprintf(d.out, "This will permanently delete the stack and all its resources.\n")

	if !d.autoApprove {
		confirmed, err := prompt.Confirm(fmt.Sprintf("Delete stack %s? This cannot be undone.", stackName))
		if err != nil {
			return fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			fmt.Fprintf(d.out, "Deletion of stack %s cancelled by user\n", stackName)
			return nil
		}
	}

	fmt.Fprintf(d.out, "Deleting stack %s\n", stackName)
	if err := d.cfnOps.DeleteStack(ctx, aws.DeleteStackInput{StackName: stackName}); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Waiting for stack deletion to complete...\n")
	if err := d.cfnOps.WaitForStackDeletion(ctx, stackName); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "Stack %s deleted\n", stackName)
	return nil
}
