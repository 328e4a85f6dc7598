/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package status

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatStackDescription_IncludesSummary(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	result := FormatStackDescription(&StackDescription{
		Name:        "replication-demo",
		Status:      "CREATE_COMPLETE",
		Region:      "eu-west-2",
		CreatedTime: created,
		Description: "Bucket replication function",
	})

	assert.Contains(t, result, "Stack: replication-demo")
	assert.Contains(t, result, "Status: CREATE_COMPLETE")
	assert.Contains(t, result, "Region: eu-west-2")
	assert.Contains(t, result, "Created: 2025-06-01 12:00:00 UTC")
	assert.Contains(t, result, "Description: Bucket replication function")
}

func TestFormatStackDescription_OmitsEmptySections(t *testing.T) {
	result := FormatStackDescription(&StackDescription{
		Name:   "replication-demo",
		Status: "CREATE_IN_PROGRESS",
	})

	assert.NotContains(t, result, "Created:")
	assert.NotContains(t, result, "Updated:")
	assert.NotContains(t, result, "Parameters:")
	assert.NotContains(t, result, "Outputs:")
	assert.NotContains(t, result, "Tags:")
}

func TestFormatStackDescription_SortsKeyValueSections(t *testing.T) {
	result := FormatStackDescription(&StackDescription{
		Name:   "replication-demo",
		Status: "CREATE_COMPLETE",
		Parameters: map[string]string{
			"SourceBucketName":      "src-bucket",
			"CodeObjectKey":         "function.zip",
			"DestinationBucketName": "dest-bucket",
		},
	})

	codeIdx := strings.Index(result, "CodeObjectKey")
	destIdx := strings.Index(result, "DestinationBucketName")
	srcIdx := strings.Index(result, "SourceBucketName")

	assert.Greater(t, codeIdx, -1)
	assert.Greater(t, destIdx, codeIdx)
	assert.Greater(t, srcIdx, destIdx)
}

func TestFormatStackDescription_IncludesOutputsAndTags(t *testing.T) {
	updated := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

	result := FormatStackDescription(&StackDescription{
		Name:        "replication-demo",
		Status:      "UPDATE_COMPLETE",
		UpdatedTime: &updated,
		Outputs:     map[string]string{"FunctionArn": "arn:aws:lambda:eu-west-2:123456789012:function:copy"},
		Tags:        map[string]string{"Team": "platform"},
	})

	assert.Contains(t, result, "Updated: 2025-06-02 09:30:00 UTC")
	assert.Contains(t, result, "Outputs:\n  FunctionArn: arn:aws:lambda")
	assert.Contains(t, result, "Tags:\n  Team: platform")
}
