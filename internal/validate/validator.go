/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package validate checks the deployment template against the
// CloudFormation service.
package validate

import (
	"context"
	"fmt"

	"github.com/orien/lambdaroo/internal/aws"
	"github.com/orien/lambdaroo/internal/model"
)

// Validator defines the interface for template validation
type Validator interface {
	Validate(ctx context.Context, dep *model.Deployment) error
}

// TemplateValidator implements Validator using the CloudFormation
// ValidateTemplate API
type TemplateValidator struct {
	cfnOps aws.CloudFormationOperations
}

// NewTemplateValidator creates a validator from an AWS client
func NewTemplateValidator(client aws.Client) *TemplateValidator {
	return &TemplateValidator{
		cfnOps: client.NewCloudFormationOperations(),
	}
}

// NewTemplateValidatorWithOperations creates a validator with explicit
// operations (for testing)
func NewTemplateValidatorWithOperations(cfnOps aws.CloudFormationOperations) *TemplateValidator {
	return &TemplateValidator{
		cfnOps: cfnOps,
	}
}

// Validate validates the deployment's processed template
func (v *TemplateValidator) Validate(ctx context.Context, dep *model.Deployment) error {
	templateBody, err := dep.GetTemplateContent()
	if err != nil {
		return fmt.Errorf("failed to get template content: %w", err)
	}

	return v.cfnOps.ValidateTemplate(ctx, templateBody)
}
