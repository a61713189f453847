// Package network is the demo client's thin UDP transport: send a 20-byte
// state packet, receive authoritative echoes on a background goroutine, and
// hand the most recent one to the game loop. The prediction engine itself
// never touches a socket.
package network

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

// Client is a connected UDP socket with a latest-wins receive channel. The
// receive loop drops anything that is not an exact, valid wire packet, so the
// game loop only ever sees packets worth reconciling against.
//
// An optional artificial delay is applied to outbound packets; combined with
// the real round trip it makes mispredictions big enough to watch, which is
// the whole point of the demo.
type Client struct {
	conn  *net.UDPConn
	delay time.Duration

	packetCh chan wire.Packet // size-1 buffered; latest wins
}

// Dial connects to the server at addr and starts the receive loop. delay is
// the artificial one-way latency added to every send; zero disables it.
func Dial(addr string, delay time.Duration) (*Client, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", addr, err)
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	c := &Client{
		conn:     conn,
		delay:    delay,
		packetCh: make(chan wire.Packet, 1),
	}
	go c.readLoop()
	return c, nil
}

// Send marshals and transmits one packet. With an artificial delay the write
// happens on a timer goroutine and any error is only logged; losing a
// datagram is normal UDP weather either way.
func (c *Client) Send(pkt wire.Packet) error {
	buf := make([]byte, wire.PacketSize)
	if err := pkt.Marshal(buf); err != nil {
		return err
	}

	if c.delay > 0 {
		time.AfterFunc(c.delay, func() {
			if _, err := c.conn.Write(buf); err != nil {
				log.Printf("[client] delayed send error: %v", err)
			}
		})
		return nil
	}

	_, err := c.conn.Write(buf)
	return err
}

// Latest returns the most recently received authoritative packet, if one
// arrived since the last call. Never blocks.
func (c *Client) Latest() (wire.Packet, bool) {
	select {
	case pkt := <-c.packetCh:
		return pkt, true
	default:
		return wire.Packet{}, false
	}
}

// Delay returns the configured artificial one-way delay.
func (c *Client) Delay() time.Duration {
	return c.delay
}

// Close shuts the socket down, stopping the receive loop.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) readLoop() {
	buf := make([]byte, wire.PacketSize+1)
	for {
		n, err := c.conn.Read(buf)
		if err != nil {
			// Closed socket or fatal read error; either way we're done.
			return
		}
		if n != wire.PacketSize {
			continue
		}

		var pkt wire.Packet
		if err := pkt.Unmarshal(buf[:n]); err != nil {
			continue
		}
		if !pkt.Valid() {
			continue
		}

		// Drain any stale packet, then publish the fresh one.
		select {
		case <-c.packetCh:
		default:
		}
		c.packetCh <- pkt
	}
}
