package core

import (
	"errors"
	"log"
	"net"
	"sync"

	"golang.org/x/time/rate"

	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

// Per-client inbound budget. A well-behaved client sends at most ~60 inputs
// per second; anything past the burst is a flood and gets dropped before it
// reaches the simulation.
const (
	inputRateLimit = rate.Limit(120)
	inputRateBurst = 60
)

// Server owns the UDP socket and pumps datagrams through the simulation.
// One receive loop; see Simulation for the locking story.
type Server struct {
	conn *net.UDPConn
	sim  *Simulation

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewServer binds a UDP socket on addr and wraps it around sim.
func NewServer(addr string, sim *Simulation) (*Server, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, err
	}
	return &Server{
		conn:     conn,
		sim:      sim,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

// Addr returns the bound local address, useful when listening on port 0.
func (s *Server) Addr() net.Addr {
	return s.conn.LocalAddr()
}

// Run receives datagrams until Close. Every datagram is screened before it
// touches the simulation: exact length, Valid(), then the sender's rate
// budget. Nothing in here is fatal — malformed traffic is dropped and the
// loop keeps going.
func (s *Server) Run() error {
	log.Printf("[server] listening on %s", s.conn.LocalAddr())

	buf := make([]byte, wire.PacketSize)
	out := make([]byte, wire.PacketSize)

	for {
		n, raddr, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		// The receive-length check is the codec's enforcement point for
		// truncated datagrams.
		if n != wire.PacketSize {
			continue
		}

		var pkt wire.Packet
		if err := pkt.Unmarshal(buf[:n]); err != nil {
			continue
		}
		if !pkt.Valid() {
			continue
		}

		id := raddr.String()
		if !s.limiter(id).Allow() {
			continue
		}

		resp := s.sim.Process(id, pkt)
		if err := resp.Marshal(out); err != nil {
			log.Printf("[server] marshal error: %v", err)
			continue
		}
		if _, err := s.conn.WriteToUDP(out, raddr); err != nil {
			log.Printf("[server] send to %s: %v", raddr, err)
		}
	}
}

// Close shuts the socket down, unblocking Run.
func (s *Server) Close() error {
	return s.conn.Close()
}

func (s *Server) limiter(id string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	lim, ok := s.limiters[id]
	if !ok {
		lim = rate.NewLimiter(inputRateLimit, inputRateBurst)
		s.limiters[id] = lim
	}
	return lim
}
