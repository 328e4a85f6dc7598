/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// describeOutput builds a DescribeStacksOutput with a single stack in the given status
func describeOutput(stackName string, status types.StackStatus) *cloudformation.DescribeStacksOutput {
	return &cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{
			{
				StackName:   aws.String(stackName),
				StackStatus: status,
			},
		},
	}
}

func stackNotFoundErr(stackName string) error {
	return &smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "Stack with id " + stackName + " does not exist",
	}
}

func TestStackExists_ReturnsTrueWhenStackPresent(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.AnythingOfType("*cloudformation.DescribeStacksInput")).
		Return(describeOutput("demo", types.StackStatusCreateComplete), nil)

	exists, err := ops.StackExists(ctx, "demo")

	require.NoError(t, err)
	assert.True(t, exists)
	mockClient.AssertExpectations(t)
}

func TestStackExists_ReturnsFalseWhenStackAbsent(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(nil, stackNotFoundErr("demo"))

	exists, err := ops.StackExists(ctx, "demo")

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStackExists_PropagatesOtherErrors(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	authErr := &smithy.GenericAPIError{Code: "AccessDenied", Message: "not authorised"}
	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(nil, authErr)

	exists, err := ops.StackExists(ctx, "demo")

	require.Error(t, err)
	assert.False(t, exists)
	assert.Contains(t, err.Error(), "failed to check if stack exists")
}

func TestCreateStack_SendsTemplateParametersAndCapabilities(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("CreateStack", ctx, mock.MatchedBy(func(input *cloudformation.CreateStackInput) bool {
		return aws.ToString(input.StackName) == "demo" &&
			aws.ToString(input.TemplateBody) == "template-body" &&
			len(input.Parameters) == 1 &&
			aws.ToString(input.Parameters[0].ParameterKey) == "SourceBucketName" &&
			aws.ToString(input.Parameters[0].ParameterValue) == "src-bucket" &&
			len(input.Capabilities) == 1 &&
			input.Capabilities[0] == types.CapabilityCapabilityIam
	})).Return(&cloudformation.CreateStackOutput{}, nil)

	err := ops.CreateStack(ctx, CreateStackInput{
		StackName:    "demo",
		TemplateBody: "template-body",
		Parameters:   []Parameter{{Key: "SourceBucketName", Value: "src-bucket"}},
		Capabilities: []string{"CAPABILITY_IAM"},
	})

	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestCreateStack_WrapsAPIErrors(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("CreateStack", ctx, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "ValidationError", Message: "Template format error"})

	err := ops.CreateStack(ctx, CreateStackInput{StackName: "demo", TemplateBody: "not-a-template"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create stack demo")
}

func TestUpdateStack_Succeeds(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("UpdateStack", ctx, mock.Anything).Return(&cloudformation.UpdateStackOutput{}, nil)

	err := ops.UpdateStack(ctx, UpdateStackInput{StackName: "demo", TemplateBody: "template-body"})

	require.NoError(t, err)
}

func TestUpdateStack_ReturnsErrNoChangesWhenNothingToDo(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	noUpdates := &smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "No updates are to be performed.",
	}
	mockClient.On("UpdateStack", ctx, mock.Anything).Return(nil, noUpdates)

	err := ops.UpdateStack(ctx, UpdateStackInput{StackName: "demo", TemplateBody: "template-body"})

	assert.ErrorIs(t, err, ErrNoChanges)
}

func TestUpdateStack_PropagatesOtherValidationErrors(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	badTemplate := &smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "Template error: unresolved resource dependencies",
	}
	mockClient.On("UpdateStack", ctx, mock.Anything).Return(nil, badTemplate)

	err := ops.UpdateStack(ctx, UpdateStackInput{StackName: "demo", TemplateBody: "template-body"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoChanges)
	assert.Contains(t, err.Error(), "failed to update stack demo")
}

func TestGetStack_MapsStackFields(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	output := &cloudformation.DescribeStacksOutput{
		Stacks: []types.Stack{
			{
				StackName:    aws.String("demo"),
				StackStatus:  types.StackStatusUpdateComplete,
				CreationTime: &created,
				Description:  aws.String("replication stack"),
				Parameters: []types.Parameter{
					{ParameterKey: aws.String("SourceBucketName"), ParameterValue: aws.String("src")},
				},
				Outputs: []types.Output{
					{OutputKey: aws.String("FunctionArn"), OutputValue: aws.String("arn:aws:lambda:eu-west-2:123:function:copy")},
				},
				Tags: []types.Tag{
					{Key: aws.String("Project"), Value: aws.String("lambdaroo")},
				},
			},
		},
	}
	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(output, nil)

	stack, err := ops.GetStack(ctx, "demo")

	require.NoError(t, err)
	assert.Equal(t, "demo", stack.Name)
	assert.Equal(t, StackStatusUpdateComplete, stack.Status)
	assert.Equal(t, &created, stack.CreatedTime)
	assert.Equal(t, "replication stack", stack.Description)
	assert.Equal(t, "src", stack.Parameters["SourceBucketName"])
	assert.Equal(t, "arn:aws:lambda:eu-west-2:123:function:copy", stack.Outputs["FunctionArn"])
	assert.Equal(t, "lambdaroo", stack.Tags["Project"])
}

func TestGetStack_ErrorsWhenNoStacksReturned(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).Return(&cloudformation.DescribeStacksOutput{}, nil)

	stack, err := ops.GetStack(ctx, "demo")

	require.Error(t, err)
	assert.Nil(t, stack)
	assert.Contains(t, err.Error(), "not found")
}

func TestWaitForStackCompletion_ReturnsOnCreateComplete(t *testing.T) {
	original := stackPollInterval
	stackPollInterval = time.Millisecond
	defer func() { stackPollInterval = original }()

	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(describeOutput("demo", types.StackStatusCreateInProgress), nil).Twice()
	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(describeOutput("demo", types.StackStatusCreateComplete), nil).Once()

	err := ops.WaitForStackCompletion(ctx, "demo")

	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestWaitForStackCompletion_FailsOnTerminalFailureStatus(t *testing.T) {
	original := stackPollInterval
	stackPollInterval = time.Millisecond
	defer func() { stackPollInterval = original }()

	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(describeOutput("demo", types.StackStatusUpdateInProgress), nil).Once()
	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(describeOutput("demo", types.StackStatusUpdateRollbackComplete), nil).Once()

	err := ops.WaitForStackCompletion(ctx, "demo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "UPDATE_ROLLBACK_COMPLETE")
}

func TestWaitForStackCompletion_StopsWhenContextCancelled(t *testing.T) {
	original := stackPollInterval
	stackPollInterval = time.Minute
	defer func() { stackPollInterval = original }()

	ctx, cancel := context.WithCancel(context.Background())
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(describeOutput("demo", types.StackStatusCreateInProgress), nil)

	cancel()
	err := ops.WaitForStackCompletion(ctx, "demo")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitForStackDeletion_ReturnsWhenStackGone(t *testing.T) {
	original := stackPollInterval
	stackPollInterval = time.Millisecond
	defer func() { stackPollInterval = original }()

	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(describeOutput("demo", types.StackStatusDeleteInProgress), nil).Once()
	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(nil, stackNotFoundErr("demo")).Once()

	err := ops.WaitForStackDeletion(ctx, "demo")

	require.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestWaitForStackDeletion_FailsOnDeleteFailed(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("DescribeStacks", ctx, mock.Anything).
		Return(describeOutput("demo", types.StackStatusDeleteFailed), nil)

	err := ops.WaitForStackDeletion(ctx, "demo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DELETE_FAILED")
}

func TestValidateTemplate_WrapsErrors(t *testing.T) {
	ctx := context.Background()
	mockClient := &MockCloudFormationClient{}
	ops := NewCloudFormationOperationsWithClient(mockClient)

	mockClient.On("ValidateTemplate", ctx, mock.Anything).
		Return(nil, &smithy.GenericAPIError{Code: "ValidationError", Message: "Invalid template resource"})

	err := ops.ValidateTemplate(ctx, "bad-template")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template validation failed")
}

func TestIsStackNotFoundError(t *testing.T) {
	assert.True(t, isStackNotFoundError(stackNotFoundErr("demo")))
	assert.True(t, isStackNotFoundError(errors.New("Stack with id demo does not exist")))
	assert.False(t, isStackNotFoundError(&smithy.GenericAPIError{Code: "AccessDenied", Message: "nope"}))
	assert.False(t, isStackNotFoundError(errors.New("connection refused")))
}

func TestIsNoUpdatesError(t *testing.T) {
	assert.True(t, isNoUpdatesError(&smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "No updates are to be performed.",
	}))
	assert.False(t, isNoUpdatesError(&smithy.GenericAPIError{
		Code:    "ValidationError",
		Message: "Template format error",
	}))
	assert.False(t, isNoUpdatesError(errors.New("throttled")))
}
