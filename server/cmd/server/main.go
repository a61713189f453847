// Headless authoritative server for the netcode demo. Run it, then point one
// or more demo clients at it:
//
//	go run ./server/cmd/server -addr :54000
package main

import (
	"flag"
	"log"

	"github.com/AryanMalekian/netcode-demo/server/core"
)

func main() {
	addr := flag.String("addr", ":54000", "UDP listen address")
	flag.Parse()

	sim := core.NewSimulation()
	srv, err := core.NewServer(*addr, sim)
	if err != nil {
		log.Fatalf("[server] bind %s: %v", *addr, err)
	}
	defer srv.Close()

	if err := srv.Run(); err != nil {
		log.Fatalf("[server] fatal: %v", err)
	}
}
