package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AryanMalekian/netcode-demo/shared/netcode"
	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

// fakeClock advances only when told to, so displacement is deterministic.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSim() (*Simulation, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	sim := NewSimulation()
	sim.now = clock.now
	return sim, clock
}

func TestProcessSeedsNewClientFromFirstPacket(t *testing.T) {
	sim, _ := newTestSim()

	resp := sim.Process("client-a", wire.Packet{Seq: 1, X: 100, Y: 200, VX: 1, VY: 0})

	// First contact: position adopted, no elapsed time yet, so no movement.
	assert.Equal(t, uint32(1), resp.Seq)
	assert.InDelta(t, 100, resp.X, 1e-4)
	assert.InDelta(t, 200, resp.Y, 1e-4)
	assert.Equal(t, 1, sim.ClientCount())
}

func TestProcessIntegratesIntentOverElapsedTime(t *testing.T) {
	sim, clock := newTestSim()

	sim.Process("client-a", wire.Packet{Seq: 1, X: 0, Y: 0})
	clock.advance(50 * time.Millisecond)
	resp := sim.Process("client-a", wire.Packet{Seq: 2, X: 0, Y: 0, VX: 1, VY: 0})

	assert.Equal(t, uint32(2), resp.Seq)
	assert.InDelta(t, netcode.MoveSpeed*0.05, resp.X, 1e-3)
	assert.InDelta(t, 0, resp.Y, 1e-4)
	assert.InDelta(t, netcode.MoveSpeed, resp.VX, 1e-4)
}

func TestProcessClampsElapsedTime(t *testing.T) {
	sim, clock := newTestSim()

	sim.Process("client-a", wire.Packet{Seq: 1, X: 0, Y: 0})
	clock.advance(10 * time.Second)
	resp := sim.Process("client-a", wire.Packet{Seq: 2, X: 0, Y: 0, VX: 1, VY: 0})

	// A stall never integrates more than MaxStep worth of movement.
	assert.InDelta(t, netcode.MoveSpeed*float32(MaxStep.Seconds()), resp.X, 1e-3)
}

func TestProcessClampsIntent(t *testing.T) {
	sim, clock := newTestSim()

	sim.Process("client-a", wire.Packet{Seq: 1, X: 0, Y: 0})
	clock.advance(100 * time.Millisecond)
	resp := sim.Process("client-a", wire.Packet{Seq: 2, X: 0, Y: 0, VX: 50, VY: -50})

	// Intent beyond [-1, 1] is treated as a full push, nothing more.
	assert.InDelta(t, netcode.MoveSpeed*0.1, resp.X, 1e-3)
	assert.InDelta(t, -netcode.MoveSpeed*0.1, resp.Y, 1e-3)
}

func TestProcessStalePacketEchoesWithoutMutation(t *testing.T) {
	sim, clock := newTestSim()

	sim.Process("client-a", wire.Packet{Seq: 1, X: 0, Y: 0})
	clock.advance(50 * time.Millisecond)
	fresh := sim.Process("client-a", wire.Packet{Seq: 5, X: 0, Y: 0, VX: 1, VY: 0})

	clock.advance(50 * time.Millisecond)
	stale := sim.Process("client-a", wire.Packet{Seq: 3, X: 0, Y: 0, VX: -1, VY: -1})

	// Stale input still answered — with the current state, unchanged.
	assert.Equal(t, fresh.Seq, stale.Seq)
	assert.InDelta(t, fresh.X, stale.X, 1e-4)
	assert.InDelta(t, fresh.Y, stale.Y, 1e-4)
	assert.InDelta(t, fresh.VX, stale.VX, 1e-4)
}

func TestProcessClampsToPlayfield(t *testing.T) {
	sim, clock := newTestSim()

	sim.Process("client-a", wire.Packet{Seq: 1, X: wire.MaxCoord, Y: 0})
	clock.advance(100 * time.Millisecond)
	resp := sim.Process("client-a", wire.Packet{Seq: 2, X: 0, Y: 0, VX: 1, VY: 0})

	assert.InDelta(t, wire.MaxCoord, resp.X, 1e-4)
}

func TestProcessClientsAreIndependent(t *testing.T) {
	sim, clock := newTestSim()

	sim.Process("client-a", wire.Packet{Seq: 1, X: 0, Y: 0})
	sim.Process("client-b", wire.Packet{Seq: 1, X: 500, Y: 500})
	require.Equal(t, 2, sim.ClientCount())

	clock.advance(100 * time.Millisecond)
	a := sim.Process("client-a", wire.Packet{Seq: 2, X: 0, Y: 0, VX: 1, VY: 0})
	b := sim.Process("client-b", wire.Packet{Seq: 2, X: 0, Y: 0, VX: 0, VY: 1})

	assert.InDelta(t, 12, a.X, 1e-3)
	assert.InDelta(t, 0, a.Y, 1e-3)
	assert.InDelta(t, 500, b.X, 1e-3)
	assert.InDelta(t, 512, b.Y, 1e-3)
}

func TestProcessHighSequenceJumpAccepted(t *testing.T) {
	sim, clock := newTestSim()

	sim.Process("client-a", wire.Packet{Seq: 1, X: 0, Y: 0})
	clock.advance(50 * time.Millisecond)

	// Lost packets mean sequence gaps; the sim only cares about newer-than.
	resp := sim.Process("client-a", wire.Packet{Seq: 100, X: 0, Y: 0, VX: 1, VY: 0})
	assert.Equal(t, uint32(100), resp.Seq)
}
