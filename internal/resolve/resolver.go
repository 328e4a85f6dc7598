/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package resolve turns configuration into a fully resolved deployment:
// template read and processed, parameters and capabilities defaulted.
package resolve

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/orien/lambdaroo/internal/config"
	"github.com/orien/lambdaroo/internal/model"
)

// Default stack parameter keys wired into the replication template
const (
	ParamSourceBucketName      = "SourceBucketName"
	ParamDestinationBucketName = "DestinationBucketName"
	ParamLambdaCodeBucketName  = "LambdaCodeBucketName"
	ParamCodeObjectKey         = "CodeObjectKey"
)

// defaultCapabilities is applied when the configuration names none. The
// replication template creates an IAM execution role.
var defaultCapabilities = []string{"CAPABILITY_IAM"}

// Resolver defines the interface for resolving configuration into deployments
type Resolver interface {
	Resolve(ctx context.Context) (*model.Deployment, error)
}

// DeploymentResolver implements Resolver from a resolved configuration
type DeploymentResolver struct {
	cfg       *config.Config
	processor TemplateProcessor
}

// NewDeploymentResolver creates a resolver for the given configuration
func NewDeploymentResolver(cfg *config.Config) *DeploymentResolver {
	return &DeploymentResolver{
		cfg:       cfg,
		processor: NewCfnTemplateProcessor(),
	}
}

// Resolve validates the configuration, reads and processes the template, and
// builds the deployment with defaults applied
func (r *DeploymentResolver) Resolve(ctx context.Context) (*model.Deployment, error) {
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	codeKey := r.cfg.Function.Key
	if codeKey == "" {
		codeKey = filepath.Base(r.cfg.Function.Archive)
	}

	templateBody, err := r.resolveTemplate(codeKey)
	if err != nil {
		return nil, err
	}

	capabilities := r.cfg.Stack.Capabilities
	if len(capabilities) == 0 {
		capabilities = defaultCapabilities
	}

	return &model.Deployment{
		Project:           r.cfg.Project,
		Region:            r.cfg.Region,
		StackName:         r.cfg.Stack.Name,
		TemplateBody:      templateBody,
		Parameters:        r.resolveParameters(codeKey),
		Tags:              r.resolveTags(),
		Capabilities:      append([]string(nil), capabilities...),
		FunctionDir:       r.cfg.Function.Dir,
		ArchivePath:       r.cfg.Function.Archive,
		CodeBucket:        r.cfg.Function.Bucket,
		CodeKey:           codeKey,
		SourceBucket:      r.cfg.Replication.SourceBucket,
		DestinationBucket: r.cfg.Replication.DestinationBucket,
		TestFile:          r.cfg.Replication.TestFile,
	}, nil
}

// resolveTemplate reads the template file and processes it with the
// deployment variables
func (r *DeploymentResolver) resolveTemplate(codeKey string) (string, error) {
	content, err := os.ReadFile(r.cfg.Stack.Template)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", r.cfg.Stack.Template, err)
	}

	variables := map[string]interface{}{
		"Project":           r.cfg.Project,
		"Region":            r.cfg.Region,
		"SourceBucket":      r.cfg.Replication.SourceBucket,
		"DestinationBucket": r.cfg.Replication.DestinationBucket,
		"CodeBucket":        r.cfg.Function.Bucket,
		"CodeKey":           codeKey,
	}

	body, err := r.processor.Process(string(content), variables)
	if err != nil {
		return "", fmt.Errorf("failed to process template %s: %w", r.cfg.Stack.Template, err)
	}

	return body, nil
}

// resolveParameters merges the wired replication parameters with any
// configured ones. Configured values win.
func (r *DeploymentResolver) resolveParameters(codeKey string) map[string]string {
	params := map[string]string{
		ParamSourceBucketName:      r.cfg.Replication.SourceBucket,
		ParamDestinationBucketName: r.cfg.Replication.DestinationBucket,
		ParamLambdaCodeBucketName:  r.cfg.Function.Bucket,
		ParamCodeObjectKey:         codeKey,
	}
	for k, v := range r.cfg.Stack.Parameters {
		params[k] = v
	}
	return params
}

// resolveTags merges global tags with stack tags. Stack tags win.
func (r *DeploymentResolver) resolveTags() map[string]string {
	if len(r.cfg.Tags) == 0 && len(r.cfg.Stack.Tags) == 0 {
		return nil
	}

	tags := make(map[string]string, len(r.cfg.Tags)+len(r.cfg.Stack.Tags))
	for k, v := range r.cfg.Tags {
		tags[k] = v
	}
	for k, v := range r.cfg.Stack.Tags {
		tags[k] = v
	}
	return tags
}
