package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(newConfigInitCommand(e))
	return cmd
}

func newConfigInitCommand(e *env) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Long: "Write the effective settings (defaults, then --profile and --log-level) " +
			"to the --config path. An existing file is kept unless --force is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.cfg.Persist(force); err != nil {
				return err
			}
			e.log.Infow("config written", "path", e.cfg.Path(), "profile", e.cfg.Profile)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), e.cfg.Path())
			return err
		},
	}
	cmd.Flags().BoolVar(&force, ForceOptionName, false, "Overwrite an existing config file")
	return cmd
}
