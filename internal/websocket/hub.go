package websocket

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"vibecode-be/internal/pkg/logger"
)

const clusterChannel = "studio_cluster_events"

// Hub fans studio session events out to connected websocket clients.
// Clients are grouped by session id; a session can have several open
// tabs. When Redis is configured, events are mirrored over a pub/sub
// channel so every instance in a cluster delivers them.
//
// The clients map and every close of a client's Send channel are
// confined to the Run goroutine; Send and the Redis subscriber only
// push onto channels.
type Hub struct {
	// SessionID -> list of clients (multi-tab). Run goroutine only.
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound

	rdb *redis.Client

	// instanceID lets the subscriber drop envelopes this hub published
	// itself; local clients already got those directly.
	instanceID string

	logger logger.ILogger
}

type outbound struct {
	sessionID uuid.UUID
	payload   []byte
}

type clusterEnvelope struct {
	Origin          string          `json:"origin"`
	TargetSessionID string          `json:"target_session_id"`
	Message         json.RawMessage `json:"message"`
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 256),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.dropClient(client)

		case out := <-h.broadcast:
			h.deliver(out)
		}
	}
}

// dropClient removes a client and closes its Send channel. A client is
// in the list at most once, so the channel is closed at most once.
func (h *Hub) dropClient(client *Client) {
	clients, ok := h.clients[client.SessionID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.SessionID]) == 0 {
		delete(h.clients, client.SessionID)
		h.logger.Info("Hub", "Session fully disconnected", map[string]interface{}{"session_id": client.SessionID})
	}
}

// deliver pushes a payload to every client of the session. A client
// whose buffer is full is dropped rather than blocking the hub.
func (h *Hub) deliver(out outbound) {
	// dropClient rewrites the list in place, so walk a snapshot.
	clients := append([]*Client(nil), h.clients[out.sessionID]...)
	for _, client := range clients {
		select {
		case client.Send <- out.payload:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"session_id": out.sessionID})
			h.dropClient(client)
		}
	}
}

// Send delivers an event to every client watching the session.
func (h *Hub) Send(sessionID uuid.UUID, eventType string, data map[string]interface{}) {
	payload, _ := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": data,
	})

	h.broadcast <- outbound{sessionID: sessionID, payload: payload}

	if h.rdb != nil {
		jsonEnvelope, _ := json.Marshal(clusterEnvelope{
			Origin:          h.instanceID,
			TargetSessionID: sessionID.String(),
			Message:         payload,
		})
		h.rdb.Publish(context.Background(), clusterChannel, jsonEnvelope)
	}
}

// handleClusterPayload queues one pub/sub envelope for delivery.
// Envelopes this instance published are skipped.
func (h *Hub) handleClusterPayload(payload []byte) {
	var envelope clusterEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		log.Printf("Redis msg parse error: %v", err)
		return
	}

	if envelope.Origin == h.instanceID {
		return
	}

	sid, err := uuid.Parse(envelope.TargetSessionID)
	if err != nil {
		return
	}

	h.broadcast <- outbound{sessionID: sid, payload: envelope.Message}
}

func (h *Hub) subscribeToRedis() {
	pubsub := h.rdb.Subscribe(context.Background(), clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.handleClusterPayload([]byte(msg.Payload))
	}
}
