// Package relay is the broadcast-and-retraction pipeline: it accepts joins
// and messages from the websocket layer, persists and fans out each message
// immediately, and races an asynchronous moderation verdict against the
// delivery, retracting flagged messages after the fact.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mkravets/safechat/internal/handlers/dto"
	"github.com/mkravets/safechat/internal/models"
	"github.com/mkravets/safechat/internal/moderation"
	"github.com/mkravets/safechat/internal/presence"
	"github.com/mkravets/safechat/internal/services"
	"github.com/mkravets/safechat/internal/session"
	"github.com/mkravets/safechat/internal/websocket"
)

// Broker is the slice of the hub the pipeline drives.
type Broker interface {
	services.Broadcaster
	JoinRoom(client *websocket.Client, website string)
}

type Relay struct {
	rooms    services.RoomDirectory
	store    services.MessageStore
	gate     *moderation.Gate
	broker   Broker
	sessions *session.Registry
	presence *presence.Counter
}

func NewRelay(
	rooms services.RoomDirectory,
	store services.MessageStore,
	gate *moderation.Gate,
	broker Broker,
	sessions *session.Registry,
	counter *presence.Counter,
) *Relay {
	return &Relay{
		rooms:    rooms,
		store:    store,
		gate:     gate,
		broker:   broker,
		sessions: sessions,
		presence: counter,
	}
}

// Presence exposes the membership accountant for observability surfaces.
func (r *Relay) Presence() *presence.Counter {
	return r.presence
}

func (r *Relay) HandleMessage(client *websocket.Client, msg *websocket.Message) error {
	switch msg.Type {
	case websocket.TypeJoin:
		return r.handleJoin(client, msg)

	case websocket.TypeMessage:
		return r.handleText(client, msg)

	default:
		log.Printf("Unknown message type: %s", msg.Type)
		return nil
	}
}

func (r *Relay) handleJoin(client *websocket.Client, msg *websocket.Message) error {
	var payload dto.JoinPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		return websocket.ErrInvalidMessage
	}

	if payload.Username == "" || payload.Room == "" {
		return websocket.ErrInvalidMessage
	}

	if _, ok := r.sessions.Lookup(client.ID); ok {
		return websocket.ErrAlreadyJoined
	}

	// A storage failure aborts the join: no delivery-group membership, no
	// counter increment, no session.
	if err := r.rooms.EnsureRoom(payload.Room); err != nil {
		log.Printf("Failed to ensure room %q: %v", payload.Room, err)
		return fmt.Errorf("join room: %w", err)
	}

	r.broker.JoinRoom(client, payload.Room)
	count := r.presence.OnJoin(payload.Room)
	r.sessions.Bind(client.ID, payload.Username, payload.Room)

	log.Printf("User %q joined room %q (%d online)", payload.Username, payload.Room, count)

	return nil
}

func (r *Relay) handleText(client *websocket.Client, msg *websocket.Message) error {
	sess, ok := r.sessions.Lookup(client.ID)
	if !ok {
		// Fail-silent: a message from a connection that never completed the
		// join handshake is dropped without a client-visible error.
		log.Printf("Dropping message from unbound connection %s", client.ID)
		return nil
	}

	var payload dto.MessagePayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		return websocket.ErrInvalidMessage
	}

	if payload.Content == "" {
		return websocket.ErrInvalidMessage
	}

	message := &models.Message{
		ID:          uuid.New(),
		RoomWebsite: sess.Website,
		Username:    sess.Username,
		Content:     payload.Content,
		CreatedAt:   time.Now(),
	}

	// Fail-closed for persistence: if the write fails, nothing is delivered.
	if err := r.store.SaveMessage(message); err != nil {
		log.Printf("Failed to save message: %v", err)
		return fmt.Errorf("save message: %w", err)
	}

	data, err := envelope(websocket.TypeMessage, dto.ReceivePayload{
		Username: sess.Username,
		Content:  payload.Content,
	})
	if err != nil {
		return err
	}
	r.broker.SendToRoom(sess.Website, data)

	// The verdict races against the delivery above. Members see the message
	// first; a positive verdict triggers a compensating retraction.
	go r.moderate(message)

	return nil
}

// moderate resolves the moderation verdict for an already delivered message.
func (r *Relay) moderate(message *models.Message) {
	flagged, err := r.gate.Check(context.Background(), message.Content)
	if err != nil {
		// Fail-open: no verdict, the message stays visible.
		log.Printf("Classifier error for message %s: %v", message.ID, err)
		return
	}

	if !flagged {
		return
	}

	data, err := envelope(websocket.TypeMessageRetract, dto.RetractionPayload{
		Content: message.Content,
	})
	if err != nil {
		log.Printf("Failed to encode retraction for message %s: %v", message.ID, err)
		return
	}
	r.broker.SendToRoom(message.RoomWebsite, data)

	if err := r.store.MarkRetracted(message.ID); err != nil {
		log.Printf("Failed to mark message %s retracted: %v", message.ID, err)
	}
}

// HandleDisconnect releases the session bound to a closing connection. The
// counter decrement keys off the session's own room, never a client-supplied
// one.
func (r *Relay) HandleDisconnect(client *websocket.Client) {
	sess, ok := r.sessions.Lookup(client.ID)
	if !ok {
		log.Printf("Disconnect from unbound connection %s", client.ID)
		return
	}

	count := r.presence.OnLeave(sess.Website)
	r.sessions.Unbind(client.ID)

	log.Printf("User %q left room %q (%d online)", sess.Username, sess.Website, count)
}

func envelope(msgType websocket.MessageType, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(websocket.Message{
		Type:      msgType,
		Data:      data,
		Timestamp: time.Now(),
	})
}
