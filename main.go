// Visual client for the netcode demo. Connects to the authoritative server
// over UDP and renders the same entity four ways — locally predicted, raw
// server state, naively extrapolated, and interpolated — so the strategies
// can be compared live. Add -delay to make the differences obvious:
//
//	go run . -addr 127.0.0.1:54000 -delay 150ms
package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/AryanMalekian/netcode-demo/config"
	"github.com/AryanMalekian/netcode-demo/network"
	"github.com/AryanMalekian/netcode-demo/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	addr := flag.String("addr", config.Net.DefaultServerAddr, "server UDP address")
	delay := flag.Duration("delay", 0, "artificial one-way send delay (e.g. 150ms)")
	flag.Parse()

	client, err := network.Dial(*addr, *delay)
	if err != nil {
		log.Fatalf("[client] connect %s: %v", *addr, err)
	}
	defer client.Close()
	log.Printf("[client] sending to %s (artificial delay %s)", *addr, *delay)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	game := &Game{scene: scenes.NewDemoScene(client)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
