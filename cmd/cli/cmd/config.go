// Package cmd - config command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"proposal-pricing/core/ui"
	"proposal-pricing/internal/config"
	apperrors "proposal-pricing/internal/errors"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := json.MarshalIndent(root.cfg, "", "  ")
			if err != nil {
				return apperrors.Internal("failed to encode configuration", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Write the default configuration to path (default $HOME/.proposal-pricing.json).
The existing file is not read, so --force can replace a broken one.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfigLoad: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return apperrors.Config(fmt.Sprintf("%s already exists (use --force to overwrite)", path)).
					WithContext("path", path)
			}
			if err := config.Default().Save(path); err != nil {
				return apperrors.Wrapf(apperrors.TypeConfig, err, "failed to write %s", path)
			}
			ui.NewWriter(cmd.OutOrStdout(), root.cfg.Output.NoColor).Success("Wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}
