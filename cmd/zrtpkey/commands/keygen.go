package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"zrtpkey/internal/crypto"
	"zrtpkey/internal/util/memzero"
)

func keygenCmd(opts *options) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair for the configured agreement and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := opts.getPassphrase(cmd)
			if err != nil {
				return err
			}
			w := opts.wire

			kp, err := w.Suite.Agreement.GenerateKeyPair(rand.Reader)
			if err != nil {
				return fmt.Errorf("generate key pair: %w", err)
			}
			defer memzero.Zero(kp.Private)

			if err := w.Keys.SaveKeyPair(pass, name, kp); err != nil {
				return fmt.Errorf("save key pair: %w", err)
			}
			w.Log.WithField("name", name).WithField("agreement", kp.Agreement).Info("key pair stored")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Agreement: %s\n", kp.Agreement)
			fmt.Fprintf(out, "Public: %s\n", crypto.Hex(kp.Public))
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(w.Suite.Hash, kp.Public))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "local", "key pair name")
	return cmd
}
