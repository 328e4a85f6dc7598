/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

// Deployment represents a fully resolved deployment ready to execute
type Deployment struct {
	Project      string
	Region       string
	StackName    string
	TemplateBody string
	Parameters   map[string]string
	Tags         map[string]string
	Capabilities []string

	// Function packaging
	FunctionDir string
	ArchivePath string
	CodeBucket  string
	CodeKey     string

	// Replication wiring
	SourceBucket      string
	DestinationBucket string
	TestFile          string
}

// GetTemplateContent returns the template content for this deployment
func (d *Deployment) GetTemplateContent() (string, error) {
	return d.TemplateBody, nil
}
