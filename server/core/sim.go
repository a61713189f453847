// Package core implements the authoritative side of the demo: a per-client
// kinematic simulation driven by received input packets, and the UDP serve
// loop that feeds it. It is headless and shares the wire format and movement
// constants with the client through the shared/ packages.
package core

import (
	"sync"
	"time"

	"github.com/AryanMalekian/netcode-demo/shared/netcode"
	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

// MaxStep caps the real-time elapsed between two processed inputs from the
// same client. Stalls, scheduler hiccups, and clock jumps otherwise inflate a
// single input into a huge displacement.
const MaxStep = 100 * time.Millisecond

// ClientState is the authoritative state for one client identity. Created on
// first contact and kept for the life of the process.
type ClientState struct {
	X, Y       float32
	VX, VY     float32
	LastSeq    uint32
	LastUpdate time.Time
}

// Simulation advances one ClientState per client identity from received
// inputs. Identities are independent; the single mutex is plenty for a demo
// serve loop and keeps the door open for multiple receive workers.
type Simulation struct {
	mu      sync.Mutex
	clients map[string]*ClientState

	now func() time.Time // swapped out in tests
}

// NewSimulation returns an empty simulation using the wall clock.
func NewSimulation() *Simulation {
	return &Simulation{
		clients: make(map[string]*ClientState),
		now:     time.Now,
	}
}

// Process applies one structurally valid input packet from the given client
// identity and returns the authoritative state to send back.
//
// The packet's VX/VY carry the client's input intent and are clamped to
// [-1, 1] per axis; its X/Y are trusted only on first contact, to seed the
// spawn position. Packets at or below the client's last processed sequence
// are stale or duplicates: they mutate nothing but still elicit an echo of
// the current state, so a client that lost our replies can always
// resynchronize.
func (s *Simulation) Process(id string, in wire.Packet) wire.Packet {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	cs, ok := s.clients[id]
	if !ok {
		cs = &ClientState{
			X:          clamp(in.X, -wire.MaxCoord, wire.MaxCoord),
			Y:          clamp(in.Y, -wire.MaxCoord, wire.MaxCoord),
			LastUpdate: now,
		}
		s.clients[id] = cs
	}

	if in.Seq > cs.LastSeq {
		elapsed := now.Sub(cs.LastUpdate)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > MaxStep {
			elapsed = MaxStep
		}
		dt := float32(elapsed.Seconds())

		ix := clamp(in.VX, -1, 1)
		iy := clamp(in.VY, -1, 1)

		cs.VX = ix * netcode.MoveSpeed
		cs.VY = iy * netcode.MoveSpeed
		cs.X = clamp(cs.X+cs.VX*dt, -wire.MaxCoord, wire.MaxCoord)
		cs.Y = clamp(cs.Y+cs.VY*dt, -wire.MaxCoord, wire.MaxCoord)

		cs.LastSeq = in.Seq
		cs.LastUpdate = now
	}

	return wire.Packet{Seq: cs.LastSeq, X: cs.X, Y: cs.Y, VX: cs.VX, VY: cs.VY}
}

// ClientCount returns how many distinct client identities have been seen.
func (s *Simulation) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
