package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

type decodeOptions struct {
	Hex bool
}

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	o := &decodeOptions{}

	decodeCmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "write the bytes of encoded text given as argument or on stdin",
		Example: `  # Decode an argument and show it as hex
  tickenc decode AAH_ --hex

  # Decode stdin into a file
  tickenc decode < blob.txt > blob.bin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			if len(args) == 1 {
				text = []byte(args[0])
			} else {
				data, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				text = bytes.TrimSpace(data)
			}

			var out tickencoding.Bytes
			if err := opts.codec.DecodeInto(text, &out); err != nil {
				opts.log.Error("Failed to decode input", err, map[string]interface{}{
					"text_size": len(text),
				})
				return err
			}

			if o.Hex {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
				return err
			}
			_, err := cmd.OutOrStdout().Write(out)
			return err
		},
	}

	decodeCmd.Flags().BoolVar(&o.Hex, "hex", false, "print the decoded bytes as lowercase hex")
	return decodeCmd
}
