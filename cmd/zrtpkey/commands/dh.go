package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"zrtpkey/internal/crypto"
	"zrtpkey/internal/util/memzero"
)

func dhCmd(opts *options) *cobra.Command {
	var name, peer string
	cmd := &cobra.Command{
		Use:   "dh",
		Short: "Combine a stored key pair with a peer public value",
		Long: "Combine a stored key pair with a peer public value and print a\n" +
			"fingerprint of the result. The raw DH result is never printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			peerPublic, err := parseHexFlag("peer", peer)
			if err != nil {
				return err
			}
			pass, err := opts.getPassphrase(cmd)
			if err != nil {
				return err
			}
			w := opts.wire

			kp, err := w.Keys.LoadKeyPair(pass, name)
			if err != nil {
				return err
			}
			defer memzero.Zero(kp.Private)

			dh, err := w.Deriver.DHSecret(kp, peerPublic)
			if err != nil {
				return err
			}
			defer memzero.Zero(dh)

			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(w.Suite.Hash, dh))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "local", "key pair name")
	cmd.Flags().StringVar(&peer, "peer", "", "peer public value (hex)")
	_ = cmd.MarkFlagRequired("peer")
	return cmd
}

func parseHexFlag(flag, s string) ([]byte, error) {
	b, err := crypto.ParseHex(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return b, nil
}
