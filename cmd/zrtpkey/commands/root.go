package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"zrtpkey/internal/app"
	"zrtpkey/internal/crypto"
)

// options is the state shared by the root command and its subcommands.
type options struct {
	cfg        app.Config
	passphrase string
	wire       *app.Wire
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: app.DefaultConfig()}

	root := &cobra.Command{
		Use:          "zrtpkey",
		Short:        "Compute ZRTP total hashes and shared secrets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(opts.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.wire = w
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.cfg.Home, "home", "", "key directory (default ~/.zrtpkey)")
	pf.StringVarP(&opts.passphrase, "passphrase", "p", "", "passphrase protecting stored keys (prompted if empty)")
	pf.StringVar(&opts.cfg.Hash, "hash", opts.cfg.Hash, "hash type ("+strings.Join(crypto.HashNames(), ", ")+")")
	pf.StringVar(&opts.cfg.Agreement, "agreement", opts.cfg.Agreement, "key agreement type ("+strings.Join(crypto.AgreementNames(), ", ")+")")
	pf.BoolVar(&opts.cfg.StrictSubgroup, "strict-subgroup", false, "reject DH peer values outside the prime-order subgroup")
	pf.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.BoolVar(&opts.cfg.LogJSON, "log-json", false, "log as JSON")

	root.AddCommand(
		keygenCmd(opts),
		pubkeyCmd(opts),
		totalHashCmd(opts),
		dhCmd(opts),
		deriveCmd(opts),
	)
	return root
}

// getPassphrase returns the -p value, or prompts for one on a terminal.
func (o *options) getPassphrase(cmd *cobra.Command) (string, error) {
	if o.passphrase != "" {
		return o.passphrase, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("passphrase required (-p)")
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Enter passphrase: ")
	defer func() { _, _ = fmt.Fprintln(cmd.ErrOrStderr()) }()

	b, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty passphrase")
	}
	return string(b), nil
}
