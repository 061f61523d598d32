package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error { return nil }

func newTestHub() *Hub {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()
	return hub
}

// registerClient returns once the hub has the client in its map, so
// later Sends are guaranteed to see it.
func registerClient(t *testing.T, hub *Hub, sessionID uuid.UUID, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: hub, SessionID: sessionID, Send: make(chan []byte, buffer)}
	hub.register <- client
	return client
}

func awaitPayload(t *testing.T, client *Client) []byte {
	t.Helper()
	select {
	case payload, open := <-client.Send:
		require.True(t, open, "client was dropped")
		return payload
	case <-time.After(time.Second):
		t.Fatal("no payload delivered")
		return nil
	}
}

func TestSendDropsSlowClientWithoutKillingHub(t *testing.T) {
	hub := newTestHub()
	slowSession := uuid.New()
	ctlSession := uuid.New()

	slow := registerClient(t, hub, slowSession, 1)
	slow.Send <- []byte("backlog") // fill the buffer, nothing drains it

	ctl := registerClient(t, hub, ctlSession, 1)

	// Broadcasts are handled in order, so once ctl gets its event the
	// slow client's delivery attempt has already happened.
	hub.Send(slowSession, "view.changed", map[string]interface{}{"view": "code"})
	hub.Send(ctlSession, "view.changed", map[string]interface{}{"view": "code"})
	awaitPayload(t, ctl)

	backlog, open := <-slow.Send
	require.True(t, open)
	assert.Equal(t, "backlog", string(backlog))
	_, open = <-slow.Send
	assert.False(t, open, "slow client channel should be closed after the drop")

	// The hub keeps serving after dropping a client.
	fresh := registerClient(t, hub, slowSession, 8)
	hub.Send(slowSession, "view.changed", map[string]interface{}{"view": "preview"})

	var msg struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(awaitPayload(t, fresh), &msg))
	assert.Equal(t, "view.changed", msg.Type)
}

func TestClusterEnvelopeFromSelfIsSkipped(t *testing.T) {
	hub := newTestHub()
	sid := uuid.New()
	client := registerClient(t, hub, sid, 8)

	own, err := json.Marshal(clusterEnvelope{
		Origin:          hub.instanceID,
		TargetSessionID: sid.String(),
		Message:         json.RawMessage(`{"type":"artifact.replaced","data":{}}`),
	})
	require.NoError(t, err)
	hub.handleClusterPayload(own)

	foreign, err := json.Marshal(clusterEnvelope{
		Origin:          "another-instance",
		TargetSessionID: sid.String(),
		Message:         json.RawMessage(`{"type":"turn.appended","data":{}}`),
	})
	require.NoError(t, err)
	hub.handleClusterPayload(foreign)

	// Only the foreign envelope arrives; the hub's own is dropped.
	assert.JSONEq(t, `{"type":"turn.appended","data":{}}`, string(awaitPayload(t, client)))

	select {
	case extra := <-client.Send:
		t.Fatalf("unexpected second delivery: %s", extra)
	case <-time.After(50 * time.Millisecond):
	}
}
