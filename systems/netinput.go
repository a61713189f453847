package systems

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/AryanMalekian/netcode-demo/config"
	"github.com/AryanMalekian/netcode-demo/shared/netcode"
	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

// NewNetInputSystem returns a system that samples the keyboard each tick,
// feeds the resulting input command to the predictor, and sends the state
// packet to the server at the configured cadence. While the predictor asks
// for throttling, the send interval doubles — shedding send rate, not input.
func NewNetInputSystem(ns *NetState) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		ix, iy := pollIntent()

		dt := float32(1.0 / float64(ebiten.TPS()))
		ns.Seq++
		cmd := netcode.InputCommand{Seq: ns.Seq, VX: ix, VY: iy, DT: dt}
		ns.Predictor.ApplyInput(cmd)

		every := cfg.Net.SendEveryTicks
		if ns.Predictor.ShouldThrottle() {
			every = cfg.Net.ThrottledSendEveryTicks
		}

		ns.Tick++
		if ns.Tick%every != 0 {
			return
		}

		x, y := ns.Predictor.PredictedPosition()
		pkt := wire.Packet{Seq: cmd.Seq, X: x, Y: y, VX: ix, VY: iy}
		if err := ns.Client.Send(pkt); err != nil {
			log.Printf("[netinput] send error: %v", err)
			return
		}
		ns.RecordSend(cmd.Seq, time.Now())
	}
}

// pollIntent maps arrows/WASD to a normalized intent per axis. Opposing keys
// cancel out.
func pollIntent() (ix, iy float32) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		ix -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		ix += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		iy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		iy += 1
	}
	return ix, iy
}
