/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/lambdaroo/internal/aws"
	"github.com/orien/lambdaroo/internal/config"
	"github.com/orien/lambdaroo/internal/config/file"
	"github.com/spf13/cobra"
)

// awsClient can be injected for testing
var awsClient aws.Client

// SetAWSClient allows injection of an AWS client (for testing)
func SetAWSClient(c aws.Client) {
	awsClient = c
}

// getAWSClient returns the injected client or creates one from the
// configuration and the persistent flags
func getAWSClient(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (aws.Client, error) {
	if awsClient != nil {
		return awsClient, nil
	}

	profile, _ := cmd.Flags().GetString("profile")
	client, err := aws.NewDefaultClient(ctx, aws.Config{
		Region:  cfg.Region,
		Profile: profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS client: %w", err)
	}
	return client, nil
}

// loadConfig loads the configuration file named by --config and applies the
// persistent flag overrides
func loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	provider := file.NewProvider(path)

	cfg, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	overrideString(cmd, "region", &cfg.Region)
	return cfg, nil
}

// overrideString sets target when the named flag was given a non-empty value
func overrideString(cmd *cobra.Command, name string, target *string) {
	if value, err := cmd.Flags().GetString(name); err == nil && value != "" {
		*target = value
	}
}

// addDeploymentFlags registers the flags shared by commands that resolve a
// full deployment from configuration
func addDeploymentFlags(cmd *cobra.Command) {
	cmd.Flags().String("stack-name", "", "CloudFormation stack name")
	cmd.Flags().String("template", "", "path to the CloudFormation template")
	cmd.Flags().String("function-dir", "", "directory containing the function source")
	cmd.Flags().String("zip-file", "", "path to write the function archive")
	cmd.Flags().String("code-bucket", "", "bucket holding the function artifact")
	cmd.Flags().String("key", "", "object key for the function artifact")
	cmd.Flags().String("source-bucket", "", "replication source bucket")
	cmd.Flags().String("destination-bucket", "", "replication destination bucket")
	cmd.Flags().String("test-file", "", "local file uploaded to the source bucket after deployment")
}

// applyDeploymentFlags overrides configuration values with any deployment
// flags the user set
func applyDeploymentFlags(cmd *cobra.Command, cfg *config.Config) {
	overrideString(cmd, "stack-name", &cfg.Stack.Name)
	overrideString(cmd, "template", &cfg.Stack.Template)
	overrideString(cmd, "function-dir", &cfg.Function.Dir)
	overrideString(cmd, "zip-file", &cfg.Function.Archive)
	overrideString(cmd, "code-bucket", &cfg.Function.Bucket)
	overrideString(cmd, "key", &cfg.Function.Key)
	overrideString(cmd, "source-bucket", &cfg.Replication.SourceBucket)
	overrideString(cmd, "destination-bucket", &cfg.Replication.DestinationBucket)
	overrideString(cmd, "test-file", &cfg.Replication.TestFile)
}

// requireStackName resolves the stack name from flag or configuration
func requireStackName(cmd *cobra.Command, cfg *config.Config) (string, error) {
	overrideString(cmd, "stack-name", &cfg.Stack.Name)
	if cfg.Stack.Name == "" {
		return "", fmt.Errorf("missing required value: set --stack-name or add it to the configuration file")
	}
	return cfg.Stack.Name, nil
}
