package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/AryanMalekian/netcode-demo/components"
	cfg "github.com/AryanMalekian/netcode-demo/config"
)

// DrawDots renders every dot's trail first, then the dot itself with its
// strategy label, so labels never hide under trails.
func DrawDots(e *ecs.ECS, screen *ebiten.Image) {
	face := basicfont.Face7x13

	components.Dot.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Trail) {
			return
		}
		dot := components.Dot.Get(entry)
		trail := components.Trail.Get(entry)

		n := len(trail.Points)
		for i, p := range trail.Points {
			a := float64(i+1) / float64(n+1)
			r := cfg.Demo.DotRadius * float32(0.25+0.5*a)
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, fade(dot.Color, 0.25*a), true)
		}
	})

	components.Dot.Each(e.World, func(entry *donburi.Entry) {
		dot := components.Dot.Get(entry)
		pos := components.Position.Get(entry)

		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), cfg.Demo.DotRadius, dot.Color, true)

		label := dot.Kind.String()
		lx := int(pos.X) - len(label)*7/2
		ly := int(pos.Y) - int(cfg.Demo.DotRadius) - 6
		text.Draw(screen, label, face, lx, ly, fade(cfg.White, 0.8))
	})
}

// fade scales every channel of c, keeping it premultiplied.
func fade(c color.RGBA, a float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
