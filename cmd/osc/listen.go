package main

import (
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chabad360/go-osc/v2/osc"
)

var listenTimeout time.Duration

var listenCmd = &cobra.Command{
	Use:   "listen <host:port>",
	Short: "Print OSC packets received over UDP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		conn, err := net.ListenPacket("udp", args[0])
		if err != nil {
			return err
		}
		logger.Info("listening", zap.Stringer("addr", conn.LocalAddr()))

		var mu sync.Mutex
		out := cmd.OutOrStdout()
		server := &osc.Server{
			ReadTimeout: listenTimeout,
			Decoder:     newDecoder(),
			Logger:      logger,
			Handler: func(p osc.Packet, addr net.Addr) {
				mu.Lock()
				defer mu.Unlock()
				printPacket(out, p, addr.String()+" ")
			},
		}

		go func() {
			<-ctx.Done()
			conn.Close()
		}()

		err = server.Serve(conn)
		if ctx.Err() != nil && errors.Is(err, net.ErrClosed) {
			return nil
		}
		return err
	},
}

func init() {
	listenCmd.Flags().DurationVar(&listenTimeout, "timeout", time.Second, "read deadline per datagram")
}
