/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
	"fmt"
)

// Provider defines the interface for loading deployment configuration
type Provider interface {
	// Load loads the deployment configuration
	Load(ctx context.Context) (*Config, error)
}

// Config represents the resolved deployment configuration. Values may come
// from a configuration file, command-line flags, or both; flags win.
type Config struct {
	Project string
	Region  string
	Tags    map[string]string

	Stack       StackConfig
	Function    FunctionConfig
	Replication ReplicationConfig
}

// StackConfig describes the CloudFormation stack to deploy
type StackConfig struct {
	Name         string
	Template     string
	Parameters   map[string]string
	Tags         map[string]string
	Capabilities []string
}

// FunctionConfig describes the function artifact and where it is stored
type FunctionConfig struct {
	Dir     string
	Archive string
	Bucket  string
	Key     string
}

// ReplicationConfig describes the bucket pair the deployed function replicates
// between, and the test object used to exercise it
type ReplicationConfig struct {
	SourceBucket      string
	DestinationBucket string
	TestFile          string
}

// Validate checks that every value a deployment needs is present
func (c *Config) Validate() error {
	required := []struct {
		value string
		flag  string
	}{
		{c.Region, "region"},
		{c.Stack.Name, "stack-name"},
		{c.Stack.Template, "template"},
		{c.Function.Dir, "function-dir"},
		{c.Function.Archive, "zip-file"},
		{c.Function.Bucket, "code-bucket"},
		{c.Replication.SourceBucket, "source-bucket"},
		{c.Replication.DestinationBucket, "destination-bucket"},
		{c.Replication.TestFile, "test-file"},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required value: set --%s or add it to the configuration file", r.flag)
		}
	}

	return nil
}
