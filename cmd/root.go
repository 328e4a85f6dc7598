/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/lambdaroo/internal/config/file"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lambdaroo",
	Short: "Deploy an S3 replication function with CloudFormation",
	Long: `Lambdaroo automates the deployment of a bucket-replication Lambda function:

• Packages the function source into a zip artifact
• Uploads the artifact to a code bucket, skipping uploads already present
• Creates or updates the CloudFormation stack idempotently
• Waits for the stack to reach a terminal state
• Seeds the source bucket with a test object to exercise replication

Configuration comes from lambdaroo.yaml, with command-line flags taking
precedence over file values.`,
}

// RootCommand returns the root command for execution and documentation
// generation
func RootCommand() *cobra.Command {
	return rootCmd
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", file.DefaultConfigFile, "configuration file")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region (overrides config)")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile")
}
