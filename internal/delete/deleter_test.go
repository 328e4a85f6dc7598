/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package delete

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/orien/lambdaroo/internal/aws"
	"github.com/orien/lambdaroo/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakePrompter answers every confirmation the same way
type fakePrompter struct {
	answer bool
}

func (p *fakePrompter) Confirm(message string) (bool, error) {
	return p.answer, nil
}

func existingStack() *aws.Stack {
	return &aws.Stack{
		Name:   "replication-demo",
		Status: aws.StackStatusCreateComplete,
	}
}

func TestDeleteStack_DeletesAndWaits(t *testing.T) {
	ctx := context.Background()

	cfnOps := &aws.MockCloudFormationOperations{}
	cfnOps.On("StackExists", ctx, "replication-demo").Return(true, nil)
	cfnOps.On("GetStack", ctx, "replication-demo").Return(existingStack(), nil)
	cfnOps.On("DeleteStack", ctx, aws.DeleteStackInput{StackName: "replication-demo"}).Return(nil)
	cfnOps.On("WaitForStackDeletion", ctx, "replication-demo").Return(nil)

	deleter := NewStackDeleterWithOperations(cfnOps)
	deleter.SetOutput(io.Discard)
	deleter.SetAutoApprove(true)

	err := deleter.DeleteStack(ctx, "replication-demo")

	require.NoError(t, err)
	cfnOps.AssertExpectations(t)
}

func TestDeleteStack_MissingStackIsNotAnError(t *testing.T) {
	ctx := context.Background()

	cfnOps := &aws.MockCloudFormationOperations{}
	cfnOps.On("StackExists", ctx, "replication-demo").Return(false, nil)

	deleter := NewStackDeleterWithOperations(cfnOps)
	deleter.SetOutput(io.Discard)
	deleter.SetAutoApprove(true)

	err := deleter.DeleteStack(ctx, "replication-demo")

	require.NoError(t, err)
	cfnOps.AssertNotCalled(t, "DeleteStack", mock.Anything, mock.Anything)
}

func TestDeleteStack_DeclinedConfirmationSkipsDeletion(t *testing.T) {
	ctx := context.Background()

	cfnOps := &aws.MockCloudFormationOperations{}
	cfnOps.On("StackExists", ctx, "replication-demo").Return(true, nil)
	cfnOps.On("GetStack", ctx, "replication-demo").Return(existingStack(), nil)

	originalPrompter := prompt.NewStdinPrompter()
	prompt.SetPrompter(&fakePrompter{answer: false})
	defer prompt.SetPrompter(originalPrompter)

	deleter := NewStackDeleterWithOperations(cfnOps)
	deleter.SetOutput(io.Discard)

	err := deleter.DeleteStack(ctx, "replication-demo")

	require.NoError(t, err)
	cfnOps.AssertNotCalled(t, "DeleteStack", mock.Anything, mock.Anything)
}

func TestDeleteStack_WaitFailurePropagates(t *testing.T) {
	ctx := context.Background()

	cfnOps := &aws.MockCloudFormationOperations{}
	cfnOps.On("StackExists", ctx, "replication-demo").Return(true, nil)
	cfnOps.On("GetStack", ctx, "replication-demo").Return(existingStack(), nil)
	cfnOps.On("DeleteStack", ctx, mock.AnythingOfType("aws.DeleteStackInput")).Return(nil)
	cfnOps.On("WaitForStackDeletion", ctx, "replication-demo").
		Return(errors.New("stack replication-demo deletion failed with status DELETE_FAILED"))

	deleter := NewStackDeleterWithOperations(cfnOps)
	deleter.SetOutput(io.Discard)
	deleter.SetAutoApprove(true)

	err := deleter.DeleteStack(ctx, "replication-demo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DELETE_FAILED")
}

func TestDeleteStack_ExistenceCheckFailurePropagates(t *testing.T) {
	ctx := context.Background()

	cfnOps := &aws.MockCloudFormationOperations{}
	cfnOps.On("StackExists", ctx, "replication-demo").Return(false, errors.New("access denied"))

	deleter := NewStackDeleterWithOperations(cfnOps)
	deleter.SetOutput(io.Discard)

	err := deleter.DeleteStack(ctx, "replication-demo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
