/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/lambdaroo/internal/status"
	"github.com/spf13/cobra"
)

var (
	// describer can be injected for testing
	describer status.Describer
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the deployed stack's current state",
	Long: `Show the current state of the deployed CloudFormation stack: status,
creation and update times, parameters, outputs, and tags.

Examples:
  lambdaroo status
  lambdaroo status --stack-name replication-demo`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(ctx, cmd)
		if err != nil {
			return err
		}

		stackName, err := requireStackName(cmd, cfg)
		if err != nil {
			return err
		}

		d := describer
		if d == nil {
			client, err := getAWSClient(ctx, cmd, cfg)
			if err != nil {
				return err
			}
			d = status.NewStackDescriber(client)
		}

		desc, err := d.DescribeStack(ctx, stackName)
		if err != nil {
			return err
		}

		cmd.Print(status.FormatStackDescription(desc))
		return nil
	},
}

// SetDescriber allows injection of a describer (for testing)
func SetDescriber(d status.Describer) {
	describer = d
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("stack-name", "", "CloudFormation stack name")
}
