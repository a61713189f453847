package netcode

import "github.com/AryanMalekian/netcode-demo/shared/wire"

// Interpolate blends the positions of two time-adjacent snapshots. t = 0
// returns prev's position exactly and t = 1 returns next's. The function does
// not clamp: callers wanting strict interpolation clamp t into [0, 1]
// themselves, and t > 1 deliberately extrapolates past next.
func Interpolate(prev, next wire.Packet, t float32) (x, y float32) {
	return prev.X + (next.X-prev.X)*t, prev.Y + (next.Y-prev.Y)*t
}
