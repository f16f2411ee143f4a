package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(userID uint) *Client {
	return &Client{UserID: userID, Role: "student", Send: make(chan []byte, 8)}
}

func TestBroadcastToUser(t *testing.T) {
	hub := NewHub()
	alice1 := newClient(1)
	alice2 := newClient(1)
	bob := newClient(2)
	hub.Register(alice1)
	hub.Register(alice2)
	hub.Register(bob)
	assert.Equal(t, 3, hub.ClientCount())

	hub.BroadcastToUser(1, map[string]string{"hello": "alice"})

	// every one of the user's connections gets the message
	for _, c := range []*Client{alice1, alice2} {
		select {
		case msg := <-c.Send:
			var got map[string]string
			require.NoError(t, json.Unmarshal(msg, &got))
			assert.Equal(t, "alice", got["hello"])
		default:
			t.Fatal("expected a message")
		}
	}
	select {
	case <-bob.Send:
		t.Fatal("bob should not receive alice's notification")
	default:
	}

	// broadcasting to a user with no connections is a no-op
	hub.BroadcastToUser(99, map[string]string{"hello": "nobody"})
}

func TestBroadcastDuringClose(t *testing.T) {
	hub := NewHub()
	clients := make([]*Client, 16)
	for i := range clients {
		clients[i] = newClient(1)
		hub.Register(clients[i])
	}

	// closing connections while broadcasts are in flight must never hit the
	// closed Send channel
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			hub.BroadcastToUser(1, map[string]int{"seq": i})
		}
	}()
	for _, c := range clients {
		c.Close()
	}
	<-done
	assert.Equal(t, 0, hub.ClientCount())
}

func TestCloseUnregisters(t *testing.T) {
	hub := NewHub()
	c := newClient(1)
	hub.Register(c)
	require.Equal(t, 1, hub.ClientCount())

	c.Close()
	assert.Equal(t, 0, hub.ClientCount())
	// double close is safe
	c.Close()

	// messages to the departed user are dropped, not panicking on a closed channel
	hub.BroadcastToUser(1, map[string]string{"hello": "ghost"})
}
