package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"zrtpkey/internal/crypto"
	"zrtpkey/internal/util/memzero"
)

func pubkeyCmd(opts *options) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print a stored public value in hex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := opts.getPassphrase(cmd)
			if err != nil {
				return err
			}
			kp, err := opts.wire.Keys.LoadKeyPair(pass, name)
			if err != nil {
				return err
			}
			memzero.Zero(kp.Private)

			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(kp.Public))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "local", "key pair name")
	return cmd
}
