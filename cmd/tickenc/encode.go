package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/tickcodec/v1/tickencoding"
)

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "print the encoded text of a file or of stdin",
		Example: `  # Encode a file
  tickenc encode ./blob.bin

  # Encode stdin
  printf '\x00\x01\xff' | tickenc encode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if err := opts.codec.SerializeAs(stringWriter{cmd}, tickencoding.Bytes(data)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
}

// stringWriter adapts cobra's output stream to io.StringWriter.
type stringWriter struct {
	cmd *cobra.Command
}

func (w stringWriter) WriteString(s string) (int, error) {
	return w.cmd.OutOrStdout().Write([]byte(s))
}
