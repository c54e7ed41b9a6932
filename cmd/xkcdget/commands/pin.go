package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"xkcdget/internal/crypto"
	"xkcdget/internal/domain"
	"xkcdget/internal/services/passphrase"
)

func pinCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pin [domain] [digits]",
		Short: "Derive a numeric PIN for a domain (not implemented yet)",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate the length before prompting for anything.
			digits := passphrase.DefaultPINDigits
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("%w: argument is not a number: %s", domain.ErrInvalidArgument, args[1])
				}
				digits = n
			}

			d, secret, err := o.credentials(args[:min(len(args), 1)])
			if err != nil {
				return err
			}
			defer crypto.Wipe(secret)

			pin, err := o.appCtx.Passphrases.PIN(secret, d, digits)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), pin)
			fmt.Fprintln(cmd.ErrOrStderr())
			return nil
		},
	}
}
