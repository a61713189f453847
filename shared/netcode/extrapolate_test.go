package netcode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

func TestExtrapolateIdentity(t *testing.T) {
	pkts := []wire.Packet{
		{Seq: 1, X: 0, Y: 0, VX: 10, VY: -5},
		{Seq: 2, X: 100.5, Y: -3.25, VX: 0, VY: 0},
		{Seq: 3, X: -9999, Y: 9999, VX: 1000, VY: -1000},
	}
	for _, pkt := range pkts {
		x, y := Extrapolate(pkt, 0)
		assert.Equal(t, pkt.X, x)
		assert.Equal(t, pkt.Y, y)
	}
}

func TestExtrapolateLinearity(t *testing.T) {
	pkt := wire.Packet{Seq: 1, X: 0, Y: 0, VX: 10, VY: 5}

	x, y := Extrapolate(pkt, 2)
	assert.InDelta(t, 20, x, 1e-6)
	assert.InDelta(t, 10, y, 1e-6)
}

func TestExtrapolateBackward(t *testing.T) {
	pkt := wire.Packet{Seq: 1, X: 100, Y: 50, VX: 10, VY: 20}

	x, y := Extrapolate(pkt, -1)
	assert.InDelta(t, 90, x, 1e-6)
	assert.InDelta(t, 30, y, 1e-6)
}

func TestExtrapolatePropagatesNonFinite(t *testing.T) {
	pkt := wire.Packet{Seq: 1, X: float32(math.NaN()), Y: 0, VX: float32(math.Inf(1)), VY: 0}

	x, y := Extrapolate(pkt, 1)
	assert.True(t, math.IsNaN(float64(x)))
	assert.Equal(t, float32(0), y)
}
