// Package scenes holds the demo's single scene: four dots chasing the same
// entity with different synchronization strategies.
package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/AryanMalekian/netcode-demo/components"
	cfg "github.com/AryanMalekian/netcode-demo/config"
	"github.com/AryanMalekian/netcode-demo/network"
	"github.com/AryanMalekian/netcode-demo/systems"
)

// Spawn position for every dot.
const (
	spawnX = 100
	spawnY = 200
)

// DemoScene drives the prediction demo: a local dot moved by the keyboard
// and predicted client-side, reconciled against the authoritative server,
// with naive extrapolation and interpolation rendered alongside for
// comparison.
type DemoScene struct {
	ecsWorld *ecs.ECS
	net      *systems.NetState
	once     sync.Once
}

// NewDemoScene wires a scene to an already-dialed transport.
func NewDemoScene(client *network.Client) *DemoScene {
	return &DemoScene{
		net: systems.NewNetState(client, spawnX, spawnY),
	}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecsWorld.Update()
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ds.ecsWorld == nil {
		return
	}
	ds.ecsWorld.Draw(screen)
}

func (ds *DemoScene) configure() {
	ds.ecsWorld = ecs.NewECS(donburi.NewWorld())

	ds.createDot(components.DotServer, cfg.Red)
	ds.createDot(components.DotPredicted, cfg.Blue)
	ds.createDot(components.DotInterpolated, cfg.Orange)
	// Local last so it draws on top of the others.
	ds.createDot(components.DotLocal, cfg.BrightGreen)

	ds.ecsWorld.AddSystem(systems.NewNetInputSystem(ds.net))
	ds.ecsWorld.AddSystem(systems.NewNetSyncSystem(ds.net))
	ds.ecsWorld.AddSystem(systems.NewDotUpdateSystem(ds.net))
	ds.ecsWorld.AddRenderer(cfg.Default, systems.DrawDots)
	ds.ecsWorld.AddRenderer(cfg.HUD, systems.NewNetHUDRenderer(ds.net))
}

func (ds *DemoScene) createDot(kind components.DotKind, c color.RGBA) {
	entity := ds.ecsWorld.World.Create(components.Dot, components.Position, components.Trail)
	entry := ds.ecsWorld.World.Entry(entity)

	components.Dot.SetValue(entry, components.DotData{Kind: kind, Color: c})
	components.Position.SetValue(entry, components.PositionData{X: spawnX, Y: spawnY})
	components.Trail.SetValue(entry, components.TrailData{Max: cfg.Demo.TrailLength})
}
