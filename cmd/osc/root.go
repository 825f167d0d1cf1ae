package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chabad360/go-osc/v2/osc"
)

// GlobalFlags are shared by every subcommand.
type GlobalFlags struct {
	Verbose     bool
	MaxDepth    int
	PadBlobs    bool
	SkipInvalid bool
}

var (
	globalFlags GlobalFlags
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "osc",
	Short:         "Open Sound Control packet tool",
	Long:          "Encode, decode, send and receive Open Sound Control messages and bundles.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if globalFlags.Verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&globalFlags.MaxDepth, "max-depth", 0, "bundle nesting limit (0: default, negative: unlimited)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.PadBlobs, "pad-blobs", false, "pad blobs to 4 bytes (OSC 1.0)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.SkipInvalid, "skip-invalid", false, "keep decoding bundle elements after an invalid one")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(listenCmd)
}

func newEncoder() *osc.Encoder {
	return &osc.Encoder{PadBlobs: globalFlags.PadBlobs}
}

func newDecoder() *osc.Decoder {
	return &osc.Decoder{
		MaxDepth:            globalFlags.MaxDepth,
		PadBlobs:            globalFlags.PadBlobs,
		SkipInvalidElements: globalFlags.SkipInvalid,
	}
}
