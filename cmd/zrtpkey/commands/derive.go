package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"zrtpkey/internal/crypto"
	"zrtpkey/internal/domain"
	"zrtpkey/internal/util/memzero"
)

func deriveCmd(opts *options) *cobra.Command {
	var name, peer, zidi, zidr string
	cmd := &cobra.Command{
		Use:   "derive HELLO COMMIT DHPART1 DHPART2",
		Short: "Derive the total hash and the shared secret s0",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := readMessages(args)
			if err != nil {
				return err
			}
			peerPublic, err := parseHexFlag("peer", peer)
			if err != nil {
				return err
			}
			initiator, err := parseZID("zidi", zidi)
			if err != nil {
				return err
			}
			responder, err := parseZID("zidr", zidr)
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

			s0, th, err := w.Deriver.Derive(domain.Handshake{
				Hello:        msgs[0],
				Commit:       msgs[1],
				DHPart1:      msgs[2],
				DHPart2:      msgs[3],
				Local:        kp,
				PeerPublic:   peerPublic,
				InitiatorZID: initiator,
				ResponderZID: responder,
			})
			if err != nil {
				return err
			}
			defer memzero.Zero(s0[:])

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total_hash: %s\n", crypto.Hex(th[:]))
			fmt.Fprintf(out, "s0: %s\n", crypto.Hex(s0[:]))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "local", "key pair name")
	f.StringVar(&peer, "peer", "", "peer public value (hex)")
	f.StringVar(&zidi, "zidi", "", "initiator ZID (hex, 12 bytes)")
	f.StringVar(&zidr, "zidr", "", "responder ZID (hex, 12 bytes)")
	for _, req := range []string{"peer", "zidi", "zidr"} {
		_ = cmd.MarkFlagRequired(req)
	}
	return cmd
}
