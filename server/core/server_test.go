package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AryanMalekian/netcode-demo/network"
	"github.com/AryanMalekian/netcode-demo/server/core"
	"github.com/AryanMalekian/netcode-demo/shared/wire"
)

func startServer(t *testing.T) *core.Server {
	t.Helper()
	srv, err := core.NewServer("127.0.0.1:0", core.NewSimulation())
	require.NoError(t, err)
	go func() { _ = srv.Run() }()
	t.Cleanup(func() { _ = srv.Close() })
	return srv
}

func waitLatest(t *testing.T, c *network.Client) wire.Packet {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if pkt, ok := c.Latest(); ok {
			return pkt
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no packet received before deadline")
	return wire.Packet{}
}

func TestServerEchoesAuthoritativeState(t *testing.T) {
	srv := startServer(t)

	client, err := network.Dial(srv.Addr().String(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Send(wire.Packet{Seq: 1, X: 100, Y: 200, VX: 1, VY: 0}))

	resp := waitLatest(t, client)
	assert.Equal(t, uint32(1), resp.Seq)
	assert.InDelta(t, 100, resp.X, 1e-3)
	assert.InDelta(t, 200, resp.Y, 1e-3)
}

func TestServerIgnoresMalformedDatagrams(t *testing.T) {
	srv := startServer(t)

	client, err := network.Dial(srv.Addr().String(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// Structurally valid but semantically invalid: zero sequence. The server
	// must stay silent; a later valid packet still gets through.
	require.NoError(t, client.Send(wire.Packet{Seq: 0, X: 1, Y: 1}))
	time.Sleep(50 * time.Millisecond)
	_, ok := client.Latest()
	assert.False(t, ok, "invalid packet must not be answered")

	require.NoError(t, client.Send(wire.Packet{Seq: 1, X: 1, Y: 1}))
	resp := waitLatest(t, client)
	assert.Equal(t, uint32(1), resp.Seq)
}

func TestServerSequenceAdvancesAcrossInputs(t *testing.T) {
	srv := startServer(t)

	client, err := network.Dial(srv.Addr().String(), 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Send(wire.Packet{Seq: 1, X: 0, Y: 0, VX: 1, VY: 0}))
	first := waitLatest(t, client)
	require.Equal(t, uint32(1), first.Seq)

	require.NoError(t, client.Send(wire.Packet{Seq: 2, X: 0, Y: 0, VX: 1, VY: 0}))
	second := waitLatest(t, client)
	assert.Equal(t, uint32(2), second.Seq)
	assert.GreaterOrEqual(t, second.X, first.X, "server keeps integrating forward")
}
