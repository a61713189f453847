package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	cfg "github.com/AryanMalekian/netcode-demo/config"
)

// NewNetHUDRenderer returns a renderer that prints the live networking
// numbers: sequences, pending inputs, throttle state, RTT, and the artificial
// delay. When a reconcile recently snapped the prediction, a fading
// correction notice appears below.
func NewNetHUDRenderer(ns *NetState) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := basicfont.Face7x13

		rtt := "n/a"
		if ns.HasRTT {
			rtt = fmt.Sprintf("%dms", ns.RTT.Milliseconds())
		}

		throttled := ""
		if ns.Predictor.ShouldThrottle() {
			throttled = "  THROTTLED"
		}

		lines := []string{
			fmt.Sprintf("seq %d  acked %d  pending %d%s",
				ns.Seq, ns.Predictor.LastAckedSeq(), ns.Predictor.PendingInputs(), throttled),
			fmt.Sprintf("rtt %s  delay %dms", rtt, ns.Client.Delay().Milliseconds()),
			"move: arrows / wasd",
		}
		for i, line := range lines {
			text.Draw(screen, line, face, 8, 16+14*i, cfg.LightGrey)
		}

		if ns.FlashAlpha > 0 {
			msg := fmt.Sprintf("corrected %.1f units", ns.LastCorrection)
			text.Draw(screen, msg, face, 8, 16+14*len(lines), fade(cfg.Amber, ns.FlashAlpha))
		}
	}
}
