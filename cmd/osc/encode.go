package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	encodeBundle   bool
	encodeTimetag  float64
	decodeMultiple bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <address> [args...]",
	Short: "Encode a message and print it as hex",
	Long:  "Encode a message (optionally wrapped in a bundle) and print the wire bytes as hex.\n\nArguments: i:42 f:0.5 s:text b:cafe t:1.5 T F N I",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPacket(args[0], args[1:], encodeBundle, timetagFlag(encodeTimetag))
		if err != nil {
			return err
		}
		data, err := newEncoder().Encode(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Decode hex encoded OSC bytes",
	Long:  "Decode an OSC packet given as hex, or read from stdin when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src string
		if len(args) == 1 {
			src = args[0]
		} else {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			src = string(b)
		}

		data, err := hex.DecodeString(strings.Join(strings.Fields(src), ""))
		if err != nil {
			return fmt.Errorf("decode hex: %w", err)
		}

		d := newDecoder()
		if decodeMultiple {
			packets, err := d.ParsePackets(data)
			for _, p := range packets {
				printPacket(cmd.OutOrStdout(), p, "")
			}
			return err
		}

		p, err := d.ParsePacket(data)
		if p != nil {
			printPacket(cmd.OutOrStdout(), p, "")
		}
		return err
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeBundle, "bundle", false, "wrap the message in a bundle")
	encodeCmd.Flags().Float64Var(&encodeTimetag, "timetag", 0, "bundle time tag in seconds (0: immediately)")
	decodeCmd.Flags().BoolVar(&decodeMultiple, "multiple", false, "input holds several packets back to back")
}
