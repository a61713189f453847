package netcode

import "github.com/AryanMalekian/netcode-demo/shared/wire"

// Extrapolate projects a position dt seconds past the state in pkt by simple
// linear extrapolation. It is the naive baseline the demo renders alongside
// the full Predictor: it ignores any input newer than pkt, so it overshoots
// whenever the entity turns.
//
// The function is total: negative dt extrapolates backward, and NaN/Inf
// inputs propagate to the result instead of being rejected.
func Extrapolate(pkt wire.Packet, dt float32) (x, y float32) {
	return pkt.X + pkt.VX*dt, pkt.Y + pkt.VY*dt
}
