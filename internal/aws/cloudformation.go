/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
)

// ErrNoChanges indicates an update was requested but the deployed stack
// already matches the requested template and parameters. This is a benign
// outcome, not a failure.
var ErrNoChanges = errors.New("no changes to apply")

// stackPollInterval is how long WaitForStackCompletion and
// WaitForStackDeletion sleep between status checks.
var stackPollInterval = 30 * time.Second

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateInProgress         StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete           StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed             StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress         StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete           StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed             StackStatus = "DELETE_FAILED"
	StackStatusUpdateInProgress         StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateComplete           StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed             StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackInProgress StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackComplete   StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusUpdateRollbackFailed     StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusRollbackInProgress       StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete         StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed           StackStatus = "ROLLBACK_FAILED"
	StackStatusReviewInProgress         StackStatus = "REVIEW_IN_PROGRESS"
)

// IsDeploySuccess reports whether the status is a successful terminal state
// for a create or update operation.
func (s StackStatus) IsDeploySuccess() bool {
	return s == StackStatusCreateComplete || s == StackStatusUpdateComplete
}

// IsDeployFailure reports whether the status is a failed terminal state for a
// create or update operation. Rollback completion counts as failure: the
// operation did not apply, even though the stack itself is stable again.
func (s StackStatus) IsDeployFailure() bool {
	switch s {
	case StackStatusCreateFailed,
		StackStatusUpdateFailed,
		StackStatusRollbackComplete,
		StackStatusRollbackFailed,
		StackStatusUpdateRollbackComplete,
		StackStatusUpdateRollbackFailed,
		StackStatusDeleteComplete,
		StackStatusDeleteFailed:
		return true
	}
	return false
}

// Stack represents a CloudFormation stack with essential information
type Stack struct {
	Name        string
	Status      StackStatus
	CreatedTime *time.Time
	UpdatedTime *time.Time
	Description string
	Parameters  map[string]string
	Outputs     map[string]string
	Tags        map[string]string
}

// Parameter represents a CloudFormation stack parameter
type Parameter struct {
	Key   string
	Value string
}

// CreateStackInput contains parameters for creating a stack
type CreateStackInput struct {
	StackName    string
	TemplateBody string
	Parameters   []Parameter
	Tags         map[string]string
	Capabilities []string
}

// UpdateStackInput contains parameters for updating a stack
type UpdateStackInput struct {
	StackName    string
	TemplateBody string
	Parameters   []Parameter
	Tags         map[string]string
	Capabilities []string
}

// DeleteStackInput contains parameters for deleting a stack
type DeleteStackInput struct {
	StackName string
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationClient
}

// NewCloudFormationOperationsWithClient creates operations with a custom client (for testing)
func NewCloudFormationOperationsWithClient(client CloudFormationClient) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: client,
	}
}

// CreateStack creates a new CloudFormation stack
func (cf *DefaultCloudFormationOperations) CreateStack(ctx context.Context, input CreateStackInput) error {
	_, err := cf.client.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(input.StackName),
		TemplateBody: aws.String(input.TemplateBody),
		Parameters:   toSDKParameters(input.Parameters),
		Tags:         toSDKTags(input.Tags),
		Capabilities: toSDKCapabilities(input.Capabilities),
	})

	if err != nil {
		return fmt.Errorf("failed to create stack %s: %w", input.StackName, err)
	}

	return nil
}

// UpdateStack updates an existing CloudFormation stack. When CloudFormation
// reports that the deployed stack already matches the requested definition,
// UpdateStack returns ErrNoChanges.
func (cf *DefaultCloudFormationOperations) UpdateStack(ctx context.Context, input UpdateStackInput) error {
	_, err := cf.client.UpdateStack(ctx, &cloudformation.UpdateStackInput{
		StackName:    aws.String(input.StackName),
		TemplateBody: aws.String(input.TemplateBody),
		Parameters:   toSDKParameters(input.Parameters),
		Tags:         toSDKTags(input.Tags),
		Capabilities: toSDKCapabilities(input.Capabilities),
	})

	if err != nil {
		if isNoUpdatesError(err) {
			return ErrNoChanges
		}
		return fmt.Errorf("failed to update stack %s: %w", input.StackName, err)
	}

	return nil
}

// DeleteStack deletes a CloudFormation stack
func (cf *DefaultCloudFormationOperations) DeleteStack(ctx context.Context, input DeleteStackInput) error {
	_, err := cf.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(input.StackName),
	})

	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", input.StackName, err)
	}

	return nil
}

// GetStack retrieves information about a specific stack
func (cf *DefaultCloudFormationOperations) GetStack(ctx context.Context, stackName string) (*Stack, error) {
	result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	if len(result.Stacks) == 0 {
		return nil, fmt.Errorf("stack %s not found", stackName)
	}

	cfnStack := result.Stacks[0]
	stack := &Stack{
		Name:        aws.ToString(cfnStack.StackName),
		Status:      StackStatus(cfnStack.StackStatus),
		CreatedTime: cfnStack.CreationTime,
		UpdatedTime: cfnStack.LastUpdatedTime,
		Description: aws.ToString(cfnStack.Description),
		Parameters:  make(map[string]string),
		Outputs:     make(map[string]string),
		Tags:        make(map[string]string),
	}

	for _, param := range cfnStack.Parameters {
		stack.Parameters[aws.ToString(param.ParameterKey)] = aws.ToString(param.ParameterValue)
	}

	for _, output := range cfnStack.Outputs {
		stack.Outputs[aws.ToString(output.OutputKey)] = aws.ToString(output.OutputValue)
	}

	for _, tag := range cfnStack.Tags {
		stack.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return stack, nil
}

// StackExists checks if a stack exists
func (cf *DefaultCloudFormationOperations) StackExists(ctx context.Context, stackName string) (bool, error) {
	_, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		if isStackNotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if stack exists: %w", err)
	}

	return true, nil
}

// ValidateTemplate validates a CloudFormation template
func (cf *DefaultCloudFormationOperations) ValidateTemplate(ctx context.Context, templateBody string) error {
	_, err := cf.client.ValidateTemplate(ctx, &cloudformation.ValidateTemplateInput{
		TemplateBody: aws.String(templateBody),
	})

	if err != nil {
		return fmt.Errorf("template validation failed: %w", err)
	}

	return nil
}

// WaitForStackCompletion polls the stack status until a create or update
// operation reaches a terminal state. It returns nil on CREATE_COMPLETE or
// UPDATE_COMPLETE and an error carrying the observed status on any failed
// terminal state.
func (cf *DefaultCloudFormationOperations) WaitForStackCompletion(ctx context.Context, stackName string) error {
	for {
		stack, err := cf.GetStack(ctx, stackName)
		if err != nil {
			return fmt.Errorf("failed to check status of stack %s: %w", stackName, err)
		}

		if stack.Status.IsDeploySuccess() {
			return nil
		}
		if stack.Status.IsDeployFailure() {
			return fmt.Errorf("stack %s operation failed with status %s", stackName, stack.Status)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("cancelled waiting for stack %s: %w", stackName, ctx.Err())
		case <-time.After(stackPollInterval):
		}
	}
}

// WaitForStackDeletion polls the stack status until the stack is gone.
// A stack that can no longer be described counts as deleted.
func (cf *DefaultCloudFormationOperations) WaitForStackDeletion(ctx context.Context, stackName string) error {
	for {
		result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
			StackName: aws.String(stackName),
		})
		if err != nil {
			if isStackNotFoundError(err) {
				return nil
			}
			return fmt.Errorf("failed to check status of stack %s: %w", stackName, err)
		}

		if len(result.Stacks) == 0 {
			return nil
		}

		status := StackStatus(result.Stacks[0].StackStatus)
		switch status {
		case StackStatusDeleteComplete:
			return nil
		case StackStatusDeleteFailed:
			return fmt.Errorf("stack %s deletion failed with status %s", stackName, status)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("cancelled waiting for stack %s: %w", stackName, ctx.Err())
		case <-time.After(stackPollInterval):
		}
	}
}

// isStackNotFoundError checks if the error indicates the stack doesn't exist.
// CloudFormation reports absent stacks as a ValidationError whose message
// names the stack, so the message text is part of the check.
func isStackNotFoundError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" &&
			strings.Contains(apiErr.ErrorMessage(), "does not exist")
	}
	return err != nil && strings.Contains(err.Error(), "does not exist")
}

// isNoUpdatesError checks if the error is CloudFormation's benign "nothing to
// do" response to UpdateStack. This predicate is the only place that depends
// on the API's wording.
func isNoUpdatesError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationError" &&
			strings.Contains(apiErr.ErrorMessage(), "No updates are to be performed")
	}
	return err != nil && strings.Contains(err.Error(), "No updates are to be performed")
}

func toSDKParameters(params []Parameter) []types.Parameter {
	result := make([]types.Parameter, len(params))
	for i, p := range params {
		result[i] = types.Parameter{
			ParameterKey:   aws.String(p.Key),
			ParameterValue: aws.String(p.Value),
		}
	}
	return result
}

func toSDKTags(tags map[string]string) []types.Tag {
	result := make([]types.Tag, 0, len(tags))
	for k, v := range tags {
		result = append(result, types.Tag{
			Key:   aws.String(k),
			Value: aws.String(v),
		})
	}
	return result
}

func toSDKCapabilities(capabilities []string) []types.Capability {
	result := make([]types.Capability, len(capabilities))
	for i, c := range capabilities {
		result[i] = types.Capability(c)
	}
	return result
}
