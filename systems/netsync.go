package systems

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/AryanMalekian/netcode-demo/config"
)

// NewNetSyncSystem returns a system that drains the transport's latest
// authoritative packet, reconciles the predictor against it, and maintains
// the snapshot pair the interpolated dot renders from. Reconciliation happens
// here, on the game loop goroutine — the predictor is never touched from the
// network receive goroutine.
func NewNetSyncSystem(ns *NetState) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		pkt, ok := ns.Client.Latest()
		if !ok {
			return
		}

		now := time.Now()
		ns.ObserveEcho(pkt.Seq, now)

		// Shift the snapshot pair: current next becomes prev.
		if ns.HasNext {
			ns.Prev = ns.Next
			ns.PrevAt = ns.NextAt
			ns.HasPrev = true
		}
		ns.Next = pkt
		ns.NextAt = now
		ns.HasNext = true

		ns.Predictor.Reconcile(pkt)

		ex, ey := ns.Predictor.ResidualError()
		mag := math.Hypot(float64(ex), float64(ey))
		if mag > cfg.Demo.FlashThreshold {
			ns.LastCorrection = mag
			ns.Flash = gween.New(1, 0, 0.75, ease.OutQuad)
		}
	}
}
