package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"xkcdget/internal/crypto"
)

// revokeCmd retires the current passphrase of a domain by appending its
// fingerprint to the revocation list.
func revokeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke [domain]",
		Short: "Revoke the current passphrase for a domain",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, secret, err := o.credentials(args)
			if err != nil {
				return err
			}
			defer crypto.Wipe(secret)

			fp, err := o.appCtx.Passphrases.Revoke(secret, d)
			if err != nil {
				return fmt.Errorf("revoking %q: %w", d, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Revoking hash:%s\n", fp)
			return nil
		},
	}
}
