/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package status reports the current state of the deployed stack.
package status

import (
	"context"
	"time"

	"github.com/orien/lambdaroo/internal/aws"
)

// StackDescription contains the stack information shown to the user
type StackDescription struct {
	Name        string
	Status      string
	CreatedTime time.Time
	UpdatedTime *time.Time
	Description string
	Parameters  map[string]string
	Outputs     map[string]string
	Tags        map[string]string
	Region      string
}

// Describer defines the interface for retrieving stack status
type Describer interface {
	DescribeStack(ctx context.Context, stackName string) (*StackDescription, error)
}

// StackDescriber implements Describer using AWS CloudFormation operations
type StackDescriber struct {
	cfnOps aws.CloudFormationOperations
	region string
}

// NewStackDescriber creates a describer from an AWS client
func NewStackDescriber(client aws.Client) *StackDescriber {
	return &StackDescriber{
		cfnOps: client.NewCloudFormationOperations(),
		region: client.Region(),
	}
}

// NewStackDescriberWithOperations creates a describer with explicit
// operations (for testing)
func NewStackDescriberWithOperations(cfnOps aws.CloudFormationOperations, region string) *StackDescriber {
	return &StackDescriber{
		cfnOps: cfnOps,
		region: region,
	}
}

// DescribeStack retrieves the current state of a stack
func (d *StackDescriber) DescribeStack(ctx context.Context, stackName string) (*StackDescription, error) {
	stack, err := d.cfnOps.GetStack(ctx, stackName)
	if err != nil {
		return nil, err
	}

	return &StackDescription{
		Name:        stack.Name,
		Status:      string(stack.Status),
		CreatedTime: dereferenceTime(stack.CreatedTime),
		UpdatedTime: stack.UpdatedTime,
		Description: stack.Description,
		Parameters:  stack.Parameters,
		Outputs:     stack.Outputs,
		Tags:        stack.Tags,
		Region:      d.region,
	}, nil
}

// dereferenceTime safely dereferences a time pointer
func dereferenceTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
