// Package components defines the donburi components for the demo scene: the
// four strategy dots and their fading trails.
package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// DotKind identifies which positioning strategy a dot visualizes.
type DotKind int

const (
	// DotLocal is the predictor output, rendered immediately.
	DotLocal DotKind = iota
	// DotServer is the last authoritative packet position, as-is.
	DotServer
	// DotPredicted is the naive extrapolation from the last packet.
	DotPredicted
	// DotInterpolated blends the two most recent packets.
	DotInterpolated
)

func (k DotKind) String() string {
	switch k {
	case DotLocal:
		return "local (predicted)"
	case DotServer:
		return "server (raw)"
	case DotPredicted:
		return "extrapolated"
	case DotInterpolated:
		return "interpolated"
	default:
		return "unknown"
	}
}

// DotData tags an entity as one of the demo dots.
type DotData struct {
	Kind  DotKind
	Color color.RGBA
}

var Dot = donburi.NewComponentType[DotData]()

// PositionData is the dot's current screen-space position.
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()

// TrailData keeps the dot's recent positions for a fading motion trail.
// Points is ordered oldest to newest and capped at Max.
type TrailData struct {
	Points []PositionData
	Max    int
}

// Push appends p, shedding the oldest point past Max.
func (t *TrailData) Push(p PositionData) {
	t.Points = append(t.Points, p)
	if t.Max > 0 && len(t.Points) > t.Max {
		t.Points = t.Points[1:]
	}
}

var Trail = donburi.NewComponentType[TrailData]()
