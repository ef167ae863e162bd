package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"zrtpkey/internal/crypto"
)

func totalHashCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "total-hash HELLO COMMIT DHPART1 DHPART2",
		Short: "Hash the four handshake message encodings in protocol order",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := readMessages(args)
			if err != nil {
				return err
			}
			th, err := opts.wire.Deriver.TotalHash(msgs[0], msgs[1], msgs[2], msgs[3])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Hex(th[:]))
			return nil
		},
	}
}
