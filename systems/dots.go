package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/AryanMalekian/netcode-demo/components"
	"github.com/AryanMalekian/netcode-demo/shared/netcode"
)

// NewDotUpdateSystem returns the per-frame system that advances smooth error
// correction and recomputes every dot's position from its strategy:
// predictor output, raw server state, naive extrapolation, and snapshot
// interpolation.
func NewDotUpdateSystem(ns *NetState) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		dt := float32(1.0 / float64(ebiten.TPS()))
		ns.Predictor.Update(dt)

		if ns.Flash != nil {
			alpha, done := ns.Flash.Update(dt)
			ns.FlashAlpha = float64(alpha)
			if done {
				ns.Flash = nil
				ns.FlashAlpha = 0
			}
		}

		now := time.Now()

		components.Dot.Each(e.World, func(entry *donburi.Entry) {
			dot := components.Dot.Get(entry)
			pos := components.Position.Get(entry)

			switch dot.Kind {
			case components.DotLocal:
				x, y := ns.Predictor.PredictedPosition()
				pos.X, pos.Y = float64(x), float64(y)

			case components.DotServer:
				if !ns.HasNext {
					return
				}
				pos.X, pos.Y = float64(ns.Next.X), float64(ns.Next.Y)

			case components.DotPredicted:
				if !ns.HasNext {
					return
				}
				elapsed := float32(now.Sub(ns.NextAt).Seconds())
				x, y := netcode.Extrapolate(ns.Next, elapsed)
				pos.X, pos.Y = float64(x), float64(y)

			case components.DotInterpolated:
				if !ns.HasPrev {
					return
				}
				interval := float32(ns.NextAt.Sub(ns.PrevAt).Seconds())
				t := float32(1)
				if interval > 1e-4 {
					t = float32(now.Sub(ns.NextAt).Seconds()) / interval
				}
				// The interpolator itself never clamps; strict blending
				// between the pair is this caller's choice.
				if t < 0 {
					t = 0
				}
				if t > 1 {
					t = 1
				}
				x, y := netcode.Interpolate(ns.Prev, ns.Next, t)
				pos.X, pos.Y = float64(x), float64(y)
			}

			if entry.HasComponent(components.Trail) {
				components.Trail.Get(entry).Push(*pos)
			}
		})
	}
}
