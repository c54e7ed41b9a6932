package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xkcdget/internal/profile"
)

func profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the known passphrase format profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range profile.Names() {
				p, err := profile.Lookup(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == profile.Default {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-4s %s\n", marker, p.Name, p.Description)
			}
			return nil
		},
	}
}
