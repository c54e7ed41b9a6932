package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"xkcdget/internal/app"
	"xkcdget/internal/crypto"
	"xkcdget/internal/domain"
	"xkcdget/internal/prompt"
)

// Version is the program version printed on every run.
const Version = "3.0.0-alpha.1"

// options holds flag values and the app built from them.
type options struct {
	configPath     string
	profile        string
	revocationFile string
	verbose        bool
	copy           bool

	appCtx *app.App
	term   *prompt.Terminal
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "xkcdget [domain]",
		Short:        "Derive memorable per-domain passphrases from a master password",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.ErrOrStderr(), "xkcdget %s\n", Version)
			return o.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, secret, err := o.credentials(args)
			if err != nil {
				return err
			}
			defer crypto.Wipe(secret)

			pw, err := o.appCtx.Passphrases.Generate(secret, d)
			if err != nil {
				return err
			}
			return o.emit(cmd, pw)
		},
	}

	root.PersistentFlags().StringVar(&o.configPath, "config", "", "config file (default ~/.config/xkcdget/config.yaml)")
	root.PersistentFlags().StringVar(&o.profile, "profile", "", "passphrase format profile (default v3)")
	root.PersistentFlags().StringVar(&o.revocationFile, "revocation-file", "", "revocation list (default ~/<profile revocation file>)")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log derivation details to stderr")
	root.Flags().BoolVarP(&o.copy, "copy", "c", false, "copy the passphrase to the clipboard instead of printing it")

	root.AddCommand(revokeCmd(o), pinCmd(o), entropyCmd(o), profilesCmd(), configCmd(o))
	return root
}

// setup loads the config, applies flags and builds the app.
func (o *options) setup(cmd *cobra.Command) error {
	home, err := os.UserHomeDir()
	if err != nil && o.revocationFile == "" {
		return fmt.Errorf("resolving home directory: %w", err)
	}
	if o.configPath == "" && home != "" {
		o.configPath = app.DefaultConfigPath(home)
	}

	cfg := app.DefaultConfig()
	if o.configPath != "" {
		if cfg, err = app.LoadConfig(o.configPath); err != nil {
			return err
		}
	}
	cfg.Home = home
	if o.profile != "" {
		cfg.Profile = o.profile
	}
	if o.revocationFile != "" {
		cfg.RevocationFile = o.revocationFile
	}
	if o.verbose {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if cfg.Clipboard {
		o.copy = true
	}

	level, err := app.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := app.NewLogger(cmd.ErrOrStderr(), level)

	if o.appCtx, err = app.New(cfg, log); err != nil {
		return err
	}
	if !o.appCtx.Revocations.Exists() {
		log.Warn().Str("path", o.appCtx.Revocations.Path()).Msg("revocation list missing or not readable")
	}

	o.term = terminalFor(cmd.InOrStdin(), cmd.ErrOrStderr())
	return nil
}

// terminalFor prompts on a real terminal only when in is the process stdin.
func terminalFor(in io.Reader, out io.Writer) *prompt.Terminal {
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		return prompt.New(in, out, int(f.Fd()))
	}
	return prompt.New(in, out, -1)
}

// credentials returns the domain (from args or stdin) and the master password.
func (o *options) credentials(args []string) (domain.Domain, domain.MasterSecret, error) {
	var d string
	if len(args) > 0 {
		d = args[0]
	} else {
		var err error
		if d, err = o.term.Domain(); err != nil {
			return "", nil, err
		}
	}
	secret, err := o.term.MasterPassword()
	if err != nil {
		return "", nil, err
	}
	return domain.Domain(d), domain.MasterSecret(secret), nil
}

// emit prints the passphrase without a newline on stdout (the newline goes to
// stderr so pipes into xsel stay clean) or copies it to the clipboard.
func (o *options) emit(cmd *cobra.Command, pw domain.Passphrase) error {
	if o.copy {
		if err := copyToClipboard(pw.String()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Passphrase copied to clipboard")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), pw.String())
	fmt.Fprintln(cmd.ErrOrStderr())
	return nil
}
