// Package config holds the demo client's tunables: window, colors, tick
// rates, and render layers. Anything the server also needs lives in shared/
// instead.
package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// WindowConfig contains the ebiten window setup.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// NetConfig contains client-side networking cadence.
type NetConfig struct {
	// DefaultServerAddr is where the demo connects unless -addr overrides it.
	DefaultServerAddr string

	// SendEveryTicks spaces state packets out to ~20 Hz at a 60 Hz game
	// loop. While the predictor reports ShouldThrottle the spacing doubles.
	SendEveryTicks          int
	ThrottledSendEveryTicks int
}

// DemoConfig contains presentation tunables for the dots and their trails.
type DemoConfig struct {
	DotRadius   float32
	TrailLength int
	// FlashThreshold is the reconcile error magnitude (units) past which the
	// HUD flashes a visible-correction notice.
	FlashThreshold float64
}

var (
	C    WindowConfig
	Net  NetConfig
	Demo DemoConfig
)

// Render layers, back to front.
const (
	Default ecs.LayerID = iota
	HUD
)

// Dot colors: green local, red server, blue naive prediction, orange
// interpolation.
var (
	White       = color.RGBA{255, 255, 255, 255}
	BrightGreen = color.RGBA{64, 255, 64, 255}
	Red         = color.RGBA{255, 64, 64, 255}
	Blue        = color.RGBA{96, 128, 255, 255}
	Orange      = color.RGBA{255, 165, 0, 255}
	LightGrey   = color.RGBA{170, 170, 170, 255}
	Amber       = color.RGBA{255, 196, 0, 255}
)

func init() {
	C = WindowConfig{
		Width:  800,
		Height: 600,
		Title:  "Netcode Demo",
	}

	Net = NetConfig{
		DefaultServerAddr:       "127.0.0.1:54000",
		SendEveryTicks:          3,
		ThrottledSendEveryTicks: 6,
	}

	Demo = DemoConfig{
		DotRadius:      8,
		TrailLength:    40,
		FlashThreshold: 2.0,
	}
}
