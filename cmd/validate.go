/*
Copyright © 2025 Lambdaroo Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"

	"github.com/orien/lambdaroo/internal/resolve"
	"github.com/orien/lambdaroo/internal/ui"
	"github.com/orien/lambdaroo/internal/validate"
	"github.com/spf13/cobra"
)

var (
	// validator can be injected for testing
	validator validate.Validator
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the CloudFormation template",
	Long: `Validate the processed CloudFormation template against the
CloudFormation service without deploying anything.

Examples:
  lambdaroo validate
  lambdaroo validate --template templates/replication.yaml`,
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

		v := validator
		if v == nil {
			client, err := getAWSClient(ctx, cmd, cfg)
			if err != nil {
				return err
			}
			v = validate.NewTemplateValidator(client)
		}

		if err := v.Validate(ctx, dep); err != nil {
			return err
		}

		styles := ui.NewStyles()
		cmd.Println(styles.Success.Render(fmt.Sprintf("Template for stack %s is valid", dep.StackName)))
		return nil
	},
}

// SetValidator allows injection of a validator (for testing)
func SetValidator(v validate.Validator) {
	validator = v
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addDeploymentFlags(validateCmd)
}
