package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg := <-c.Send:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for client message")
		return nil
	}
}

func TestHubRoomDelivery(t *testing.T) {
	hub := NewHub()

	a := NewClient(hub, nil)
	b := NewClient(hub, nil)
	outsider := NewClient(hub, nil)

	hub.JoinRoom(a, "r1")
	hub.JoinRoom(b, "r1")
	hub.JoinRoom(outsider, "r2")

	hub.SendToRoom("r1", []byte("hello"))

	assert.Equal(t, "hello", string(drain(t, a)))
	assert.Equal(t, "hello", string(drain(t, b)))

	select {
	case msg := <-outsider.Send:
		t.Fatalf("outsider received %q", msg)
	case <-time.After(20 * time.Millisecond):
	}
}

func TestHubDeliveryOrder(t *testing.T) {
	hub := NewHub()

	a := NewClient(hub, nil)
	hub.JoinRoom(a, "r1")

	hub.SendToRoom("r1", []byte("one"))
	hub.SendToRoom("r1", []byte("two"))
	hub.SendToRoom("r1", []byte("three"))

	assert.Equal(t, "one", string(drain(t, a)))
	assert.Equal(t, "two", string(drain(t, a)))
	assert.Equal(t, "three", string(drain(t, a)))
}

func TestHubRoomSize(t *testing.T) {
	hub := NewHub()

	a := NewClient(hub, nil)
	b := NewClient(hub, nil)

	assert.Equal(t, 0, hub.RoomSize("r1"))

	hub.JoinRoom(a, "r1")
	hub.JoinRoom(b, "r1")
	assert.Equal(t, 2, hub.RoomSize("r1"))

	hub.LeaveRoom(a, "r1")
	assert.Equal(t, 1, hub.RoomSize("r1"))
}

func TestHubUnregisterRemovesFromRoom(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.cancel()

	a := NewClient(hub, nil)
	b := NewClient(hub, nil)

	hub.Register(a)
	hub.Register(b)
	hub.JoinRoom(a, "r1")
	hub.JoinRoom(b, "r1")

	hub.Unregister(a)

	require.Eventually(t, func() bool {
		return hub.RoomSize("r1") == 1
	}, time.Second, 5*time.Millisecond)

	// The departed client's queue is closed; the survivor still receives.
	_, open := <-a.Send
	assert.False(t, open)

	hub.SendToRoom("r1", []byte("still here"))
	assert.Equal(t, "still here", string(drain(t, b)))
}

func TestHubSendMessageQueueFull(t *testing.T) {
	hub := NewHub()
	c := NewClient(hub, nil)

	for i := 0; i < cap(c.Send); i++ {
		require.NoError(t, c.SendMessage(TypeMessage, map[string]string{"content": "x"}))
	}

	err := c.SendMessage(TypeMessage, map[string]string{"content": "overflow"})
	assert.ErrorIs(t, err, ErrClientQueueFull)
}
