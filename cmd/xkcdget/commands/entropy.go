package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func entropyCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "entropy",
		Short: "Print the entropy of passphrases in the active profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perSlot, total := o.appCtx.Passphrases.Entropy()
			fmt.Fprintf(cmd.OutOrStdout(), "Entropy: %.2f bits (%d words)\n", total, len(perSlot))
			for slot, bits := range perSlot {
				fmt.Fprintf(cmd.OutOrStdout(), "  word %d: %.2f bits\n", slot+1, bits)
			}
			return nil
		},
	}
}
