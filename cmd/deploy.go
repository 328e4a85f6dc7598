/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/orien/lambdaroo/internal/config"
	"github.com/orien/lambdaroo/internal/deploy"
	"github.com/orien/lambdaroo/internal/resolve"
	"github.com/orien/lambdaroo/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// deployer can be injected for testing
	deployer deploy.Deployer
)

// deployCmd represents the deploy command
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Package, upload, and deploy the replication function",
	Long: `Deploy the replication function end to end.

The command packages the function source into a zip artifact, uploads it to
the code bucket (creating the bucket if needed, skipping the upload when the
object already exists), then creates or updates the CloudFormation stack and
waits for it to reach a terminal state. A stack update that reports no
changes is treated as success. Finally the test file is uploaded to the
source bucket so the deployed function can be exercised.

You will be prompted before the stack is created or updated; pass --yes to
skip the prompt.

Examples:
  lambdaroo deploy                                # everything from lambdaroo.yaml
  lambdaroo deploy --stack-name replication-demo  # override the stack name
  lambdaroo deploy --yes                          # no confirmation prompt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(ctx, cmd)
		if err != nil {
			return err
		}
		applyDeploymentFlags(cmd, cfg)

		dep, err := resolve.NewDeploymentResolver(cfg).Resolve(ctx)
		if err != nil {
			return err
		}

		autoApprove, _ := cmd.Flags().GetBool("yes")
		d, err := getDeployer(ctx, cmd, cfg, autoApprove)
		if err != nil {
			return err
		}

		if err := d.Deploy(ctx, dep); err != nil {
			return fmt.Errorf("error deploying stack %s: %w", dep.StackName, err)
		}

		styles := ui.NewStyles()
		cmd.Println(styles.Success.Render(fmt.Sprintf("Successfully deployed stack %s", dep.StackName)))
		return nil
	},
}

// getDeployer returns the deployer instance, creating a default one if none
// is set
func getDeployer(ctx context.Context, cmd *cobra.Command, cfg *config.Config, autoApprove bool) (deploy.Deployer, error) {
	if deployer != nil {
		return deployer, nil
	}

	client, err := getAWSClient(ctx, cmd, cfg)
	if err != nil {
		return nil, err
	}

	d := deploy.NewStackDeployer(client)
	d.SetAutoApprove(autoApprove)
	d.SetOutput(cmd.OutOrStdout())
	return d, nil
}

// SetDeployer allows injection of a deployer (for testing)
func SetDeployer(d deploy.Deployer) {
	deployer = d
}

func init() {
	rootCmd.AddCommand(deployCmd)
	addDeploymentFlags(deployCmd)
	deployCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}
