package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xkcdget/internal/app"
	"xkcdget/internal/store"
)

func configCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the xkcdget config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the active configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.configPath == "" {
				return fmt.Errorf("no config path: set --config")
			}
			existing, err := store.ReadFile(o.configPath)
			if err != nil {
				return err
			}
			if existing != nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", o.configPath)
			}
			if err := app.SaveConfig(o.configPath, o.appCtx.Config); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", o.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
