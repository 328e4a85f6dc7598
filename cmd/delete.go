/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/orien/lambdaroo/internal/delete"
	"github.com/spf13/cobra"
)

var (
	// deleter can be injected for testing
	deleter delete.Deleter
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the deployed stack",
	Long: `Delete the deployed CloudFormation stack and wait for the deletion to
complete. You will be prompted before anything is removed; pass --yes to
skip the prompt. A stack that does not exist is not an error.

Examples:
  lambdaroo delete
  lambdaroo delete --stack-name replication-demo --yes`,
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

		d := deleter
		if d == nil {
			client, err := getAWSClient(ctx, cmd, cfg)
			if err != nil {
				return err
			}
			sd := delete.NewStackDeleter(client)
			autoApprove, _ := cmd.Flags().GetBool("yes")
			sd.SetAutoApprove(autoApprove)
			sd.SetOutput(cmd.OutOrStdout())
			d = sd
		}

		if err := d.DeleteStack(ctx, stackName); err != nil {
			return fmt.Errorf("error deleting stack %s: %w", stackName, err)
		}
		return nil
	},
}

// SetDeleter allows injection of a deleter (for testing)
func SetDeleter(d delete.Deleter) {
	deleter = d
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().String("stack-name", "", "CloudFormation stack name")
	deleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
