// Package wire defines the fixed-size UDP datagram format shared between the
// demo client and the authoritative server. It must have zero dependencies on
// ebiten or any graphics library so the headless server binary stays lean.
//
// A packet is exactly 20 bytes on the wire: a 4-byte sequence number followed
// by position (x, y) and velocity (vx, vy) as float32. Every field is encoded
// big-endian; floats go through their IEEE-754 bit pattern, so the format is
// identical across architectures.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PacketSize is the exact encoded size of one Packet. The transport layer's
// receive-length check against this value is what protects Unmarshal from
// truncated datagrams.
const PacketSize = 20

// Bounds accepted by Valid. Positions live on a fixed playfield; velocity is
// capped well above anything the simulation can produce.
const (
	MaxCoord    = 10000.0
	MaxVelocity = 1000.0
)

// Packet carries one entity state update. Seq is assigned monotonically by
// the sender; Seq == 0 marks an invalid/uninitialized packet and never
// appears on the wire from a well-behaved peer.
type Packet struct {
	Seq    uint32
	X, Y   float32
	VX, VY float32
}

// Marshal encodes p into buf, which must hold at least PacketSize bytes.
// Field order is Seq, X, Y, VX, VY with no padding.
func (p Packet) Marshal(buf []byte) error {
	if len(buf) < PacketSize {
		return fmt.Errorf("wire: marshal buffer too short: %d < %d", len(buf), PacketSize)
	}
	binary.BigEndian.PutUint32(buf[0:4], p.Seq)
	binary.BigEndian.PutUint32(buf[4:8], math.Float32bits(p.X))
	binary.BigEndian.PutUint32(buf[8:12], math.Float32bits(p.Y))
	binary.BigEndian.PutUint32(buf[12:16], math.Float32bits(p.VX))
	binary.BigEndian.PutUint32(buf[16:20], math.Float32bits(p.VY))
	return nil
}

// Unmarshal decodes buf into p. It performs no semantic validation; callers
// check Valid separately, matching the receive path's two-step contract.
func (p *Packet) Unmarshal(buf []byte) error {
	if len(buf) < PacketSize {
		return fmt.Errorf("wire: unmarshal buffer too short: %d < %d", len(buf), PacketSize)
	}
	p.Seq = binary.BigEndian.Uint32(buf[0:4])
	p.X = math.Float32frombits(binary.BigEndian.Uint32(buf[4:8]))
	p.Y = math.Float32frombits(binary.BigEndian.Uint32(buf[8:12]))
	p.VX = math.Float32frombits(binary.BigEndian.Uint32(buf[12:16]))
	p.VY = math.Float32frombits(binary.BigEndian.Uint32(buf[16:20]))
	return nil
}

// Valid reports whether p is usable: non-zero sequence, all fields finite,
// position within the playfield, velocity within the cap. Any single bad
// field fails the whole packet.
func (p Packet) Valid() bool {
	if p.Seq == 0 {
		return false
	}
	for _, f := range [4]float32{p.X, p.Y, p.VX, p.VY} {
		v := float64(f)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	if math.Abs(float64(p.X)) > MaxCoord || math.Abs(float64(p.Y)) > MaxCoord {
		return false
	}
	if math.Abs(float64(p.VX)) > MaxVelocity || math.Abs(float64(p.VY)) > MaxVelocity {
		return false
	}
	return true
}
