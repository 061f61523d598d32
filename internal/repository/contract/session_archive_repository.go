package contract

import (
	"context"

	"github.com/google/uuid"

	"vibecode-be/internal/model"
	"vibecode-be/pkg/store"
)

// SessionArchiveRepository persists a durable copy of in-memory studio
// sessions for later inspection. Writes are best-effort; the live
// session state never depends on the archive.
type SessionArchiveRepository interface {
	Create(ctx context.Context, session *store.Session) error
	AppendTurn(ctx context.Context, sessionId uuid.UUID, turn *store.Turn) error
	UpdateArtifact(ctx context.Context, sessionId uuid.UUID, artifact string, activeView string) error
	FindAll(ctx context.Context) ([]*model.SessionRecord, error)
}
