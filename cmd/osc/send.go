package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chabad360/go-osc/v2/osc"
)

var (
	sendBundle  bool
	sendTimetag float64
	sendCount   int
)

var sendCmd = &cobra.Command{
	Use:   "send <host:port> <address> [args...]",
	Short: "Send a message over UDP",
	Long:  "Send a message (optionally wrapped in a bundle) as one UDP datagram.\n\nArguments: i:42 f:0.5 s:text b:cafe t:1.5 T F N I",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPacket(args[1], args[2:], sendBundle, timetagFlag(sendTimetag))
		if err != nil {
			return err
		}

		client, err := osc.Dial(args[0])
		if err != nil {
			return err
		}
		defer client.Close()
		client.Encoder = newEncoder()

		for i := 0; i < sendCount; i++ {
			if err := client.Send(p); err != nil {
				return err
			}
		}
		logger.Debug("sent", zap.String("to", args[0]), zap.Stringer("from", client.LocalAddr()), zap.Int("count", sendCount))
		return nil
	},
}

func init() {
	sendCmd.Flags().BoolVar(&sendBundle, "bundle", false, "wrap the message in a bundle")
	sendCmd.Flags().Float64Var(&sendTimetag, "timetag", 0, "bundle time tag in seconds (0: immediately)")
	sendCmd.Flags().IntVarP(&sendCount, "count", "n", 1, "number of datagrams to send")
}

// timetagFlag maps the --timetag flag to a time tag, 0 meaning immediately.
func timetagFlag(seconds float64) osc.Timetag {
	if seconds == 0 {
		return osc.NewImmediateTimetag()
	}
	return osc.NewTimetagFromSeconds(seconds)
}
