package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Hub struct {
	clients map[uuid.UUID]*Client

	// Clients grouped by room key; a connection sits in at most one room.
	rooms      map[string]map[uuid.UUID]*Client
	membership map[uuid.UUID]string

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		rooms:      make(map[string]map[uuid.UUID]*Client),
		membership: make(map[uuid.UUID]string),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run drives client registration and the keepalive ticker until Stop.
func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ticker.C:
			h.ping()
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	log.Printf("Client registered: %s", client.ID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	if website, ok := h.membership[client.ID]; ok {
		h.removeFromRoomUnsafe(client, website)
	}

	delete(h.clients, client.ID)
	close(client.Send)

	log.Printf("Client unregistered: %s", client.ID)
}

// JoinRoom adds the client to a room's delivery group.
func (h *Hub) JoinRoom(client *Client, website string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[website]; !ok {
		h.rooms[website] = make(map[uuid.UUID]*Client)
	}

	h.rooms[website][client.ID] = client
	h.membership[client.ID] = website
}

func (h *Hub) LeaveRoom(client *Client, website string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromRoomUnsafe(client, website)
}

func (h *Hub) removeFromRoomUnsafe(client *Client, website string) {
	room, ok := h.rooms[website]
	if !ok {
		return
	}

	delete(room, client.ID)
	delete(h.membership, client.ID)

	if len(room) == 0 {
		delete(h.rooms, website)
	}
}

// SendToRoom delivers the payload to every connection currently in the room.
func (h *Hub) SendToRoom(website string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if room, ok := h.rooms[website]; ok {
		for _, client := range room {
			select {
			case client.Send <- message:
			default:
				log.Printf("Client %s send channel full", client.ID)
			}
		}
	}
}

// RoomSize reports how many connections sit in the room's delivery group.
func (h *Hub) RoomSize(website string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[website])
}

func (h *Hub) ping() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := Message{
		Type:      TypePing,
		Timestamp: time.Now(),
	}

	if data, err := json.Marshal(msg); err == nil {
		for _, client := range h.clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}
