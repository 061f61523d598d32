package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id        uuid.UUID `json:"id"`
	Token     string    `json:"token"`
	Artifact  string    `json:"artifact"`
	Turns     []TurnDTO `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
}

type TurnDTO struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type VisualReferenceDTO struct {
	Id        int64  `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	HiDPIURL  string `json:"hidpi_url,omitempty"`
	SourceURL string `json:"source_url"`
}

type SessionSnapshotResponse struct {
	Id         uuid.UUID           `json:"id"`
	Artifact   string              `json:"artifact"`
	Turns      []TurnDTO           `json:"turns"`
	VisualRef  *VisualReferenceDTO `json:"visual_ref,omitempty"`
	ActiveView string              `json:"active_view"`
	Busy       bool                `json:"busy"`
	CreatedAt  time.Time           `json:"created_at"`
}

type SubmitPromptRequest struct {
	Prompt string `json:"prompt"`
}

type SubmitPromptResponse struct {
	Artifact   string    `json:"artifact"`
	Turns      []TurnDTO `json:"turns"`
	ActiveView string    `json:"active_view"`
	Succeeded  bool      `json:"succeeded"`
}

type AttachVisualContextRequest struct {
	Id        int64  `json:"id" validate:"required"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url" validate:"required,url"`
	HiDPIURL  string `json:"hidpi_url,omitempty"`
	SourceURL string `json:"source_url"`
}

type SetActiveViewRequest struct {
	View string `json:"view" validate:"required,oneof=preview code search"`
}

type ArtifactResponse struct {
	Artifact string `json:"artifact"`
}

type ArchivedSessionResponse struct {
	Id         uuid.UUID `json:"id"`
	ActiveView string    `json:"active_view"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
