package osc

import (
	"errors"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MaxPacketSize is the largest datagram the server reads.
const MaxPacketSize = 65535

var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, MaxPacketSize)
		return &b
	},
}

// HandlerFunc receives every packet the server decodes.
type HandlerFunc func(packet Packet, addr net.Addr)

// Server represents an OSC server. The server listens on Addr for incoming OSC
// packets and bundles and passes them to Handler.
type Server struct {
	Addr        string
	Handler     HandlerFunc
	ReadTimeout time.Duration

	// Decoder decodes incoming datagrams. nil means the default Decoder. When
	// Decoder.SkipInvalidElements is set, bundles with invalid elements are
	// still handed to Handler with the elements that decoded.
	Decoder *Decoder

	// Logger receives dropped packets and handler panics. nil disables
	// logging.
	Logger *zap.Logger
}

// ListenAndServe listens on the UDP address addr and calls handler for every
// packet received.
func ListenAndServe(addr string, handler HandlerFunc) error {
	s := &Server{Addr: addr, Handler: handler}
	return s.ListenAndServe()
}

// ListenAndServe retrieves incoming OSC packets and dispatches the retrieved OSC packets.
func (s *Server) ListenAndServe() error {
	ln, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return s.Serve(ln)
}

// Serve retrieves incoming OSC packets from the given connection and passes
// them to the Handler. Datagrams that fail to decode are logged and dropped.
// Serve returns when reading from c fails for a reason other than a timeout
// or bad data, typically because c was closed.
func (s *Server) Serve(c net.PacketConn) error {
	log := s.logger()
	for {
		p, addr, err := s.readFromConnection(c)
		if err != nil {
			var ne net.Error
			switch {
			case errors.As(err, &ne) && ne.Timeout():
				continue
			case isDecodeError(err):
				if p == nil || !s.decoder().SkipInvalidElements {
					log.Debug("dropping invalid packet", zap.Stringer("from", addr), zap.Error(err))
					continue
				}
				log.Warn("delivering bundle with invalid elements", zap.Stringer("from", addr), zap.Error(err))
			default:
				return err
			}
		}
		if s.Handler != nil {
			go s.serve(p, addr)
		}
	}
}

func (s *Server) serve(p Packet, a net.Addr) {
	defer func() {
		if err := recover(); err != nil {
			s.logger().Error("panic handling packet",
				zap.Stringer("from", a),
				zap.Any("panic", err),
				zap.Stack("stack"),
			)
		}
	}()
	s.Handler(p, a)
}

// ReceivePacket reads one datagram from c and decodes it.
func (s *Server) ReceivePacket(c net.PacketConn) (Packet, net.Addr, error) {
	return s.readFromConnection(c)
}

// readFromConnection retrieves OSC packets.
func (s *Server) readFromConnection(c net.PacketConn) (Packet, net.Addr, error) {
	if s.ReadTimeout != 0 {
		if err := c.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return nil, nil, err
		}
	}

	b := bufPool.Get().(*[]byte)
	defer bufPool.Put(b)

	n, a, err := c.ReadFrom(*b)
	if err != nil {
		return nil, a, err
	}

	// Decoded values never alias their input, so the buffer can go back to
	// the pool.
	p, err := s.decoder().ParsePacket((*b)[:n])
	return p, a, err
}

func (s *Server) decoder() *Decoder {
	if s.Decoder == nil {
		return defaultDecoder
	}
	return s.Decoder
}

func (s *Server) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func isDecodeError(err error) bool {
	return errors.Is(err, ErrTruncated) || errors.Is(err, ErrMalformed) || errors.Is(err, ErrUnknownTag)
}
