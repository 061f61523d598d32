package dto

import "time"

// SessionEventMessage is the wire form of a session event on the
// internal bus. Data always carries a "session_id" key.
type SessionEventMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
