// Package systems contains the donburi systems driving the demo scene:
// input sampling and prediction, server sync and reconciliation, dot
// placement, and rendering.
package systems

import (
	"time"

	"github.com/tanema/gween"

	"github.com/AryanMalekian/netcode-demo/network"
	"github.com/AryanMalekian/netcode-demo/shared/netcode"
	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

// rttRingSize bounds the send-timestamp ring used for RTT estimation.
const rttRingSize = 256

type sendRecord struct {
	seq uint32
	at  time.Time
}

// NetState is the mutable networking state the scene's systems share: the
// prediction engine, the transport, the interpolation snapshot pair, and HUD
// bookkeeping. It lives on the scene and is only touched from the game loop
// goroutine, which is the ownership model the Predictor requires.
type NetState struct {
	Client    *network.Client
	Predictor *netcode.Predictor

	Seq  uint32 // last locally assigned input sequence
	Tick int    // frame counter, used to space out sends

	// Snapshot pair for interpolation, oldest first.
	HasPrev        bool
	HasNext        bool
	Prev, Next     wire.Packet
	PrevAt, NextAt time.Time

	// RTT estimate from matching echoed sequences against send times.
	sent   [rttRingSize]sendRecord
	RTT    time.Duration
	HasRTT bool

	// Correction flash: set when a reconcile produced a visible snap, fades
	// out through the tween.
	Flash          *gween.Tween
	FlashAlpha     float64
	LastCorrection float64
}

// NewNetState wires a fresh predictor starting at the given position to the
// given transport.
func NewNetState(client *network.Client, startX, startY float32) *NetState {
	return &NetState{
		Client:    client,
		Predictor: netcode.NewPredictor(startX, startY),
	}
}

// RecordSend remembers when seq went out, for RTT matching.
func (ns *NetState) RecordSend(seq uint32, at time.Time) {
	ns.sent[seq%rttRingSize] = sendRecord{seq: seq, at: at}
}

// ObserveEcho updates the RTT estimate if the echoed sequence is still in
// the ring (it may have been overwritten under heavy send rates).
func (ns *NetState) ObserveEcho(seq uint32, now time.Time) {
	rec := ns.sent[seq%rttRingSize]
	if rec.seq != seq || rec.at.IsZero() {
		return
	}
	ns.RTT = now.Sub(rec.at)
	ns.HasRTT = true
}
