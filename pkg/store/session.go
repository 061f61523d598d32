package store

import (
	"time"

	"github.com/google/uuid"
)

// Turn is one entry of a session conversation. Turns are immutable once
// appended; insertion order is the only ordering guarantee.
type Turn struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"` // "user" | "assistant"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// VisualReference is an externally sourced image used as style guidance for
// the next synthesis call only.
type VisualReference struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`            // normal resolution
	HiDPIURL  string `json:"hidpi_url,omitempty"`  // preferred when present
	SourceURL string `json:"source_url,omitempty"` // provider page, display only
}

// BestURL returns the reference URL to hand to the synthesis client:
// high resolution when available, else the normal one.
func (r *VisualReference) BestURL() string {
	if r == nil {
		return ""
	}
	if r.HiDPIURL != "" {
		return r.HiDPIURL
	}
	return r.ImageURL
}

// Session represents the active studio session state in memory.
// It is the single source of truth for the conversation log, the current
// artifact and the visual context slot. Only the studio service mutates it.
type Session struct {
	Id       uuid.UUID `json:"id"`
	Artifact string    `json:"artifact"`
	Turns    []*Turn   `json:"turns"`

	// THE SLOT (at most one attached reference, consumed per round-trip)
	VisualRef *VisualReference `json:"visual_ref,omitempty"`

	// Presentation view the client should show. Reset to ViewPreview on
	// every submit so generation results land in front of the user.
	ActiveView string `json:"active_view"`

	// Busy is true while a synthesis round-trip is in flight.
	Busy bool `json:"busy"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	ViewPreview = "preview"
	ViewCode    = "code"
	ViewSearch  = "search"
)

// AppendTurn appends a turn and returns it. No other mutation of the log
// exists anywhere in the codebase.
func (s *Session) AppendTurn(role, text string, at time.Time) *Turn {
	t := &Turn{
		Id:        uuid.New(),
		Role:      role,
		Text:      text,
		CreatedAt: at,
	}
	s.Turns = append(s.Turns, t)
	return t
}
