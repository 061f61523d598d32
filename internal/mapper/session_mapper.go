package mapper

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vibecode-be/internal/model"
	"vibecode-be/pkg/store"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) SessionToRecord(s *store.Session) *model.SessionRecord {
	if s == nil {
		return nil
	}

	var visualRef []byte
	if s.VisualRef != nil {
		visualRef, _ = json.Marshal(s.VisualRef)
	}

	return &model.SessionRecord{
		Id:         s.Id,
		Artifact:   s.Artifact,
		ActiveView: s.ActiveView,
		VisualRef:  datatypes.JSON(visualRef),
		CreatedAt:  s.CreatedAt,
	}
}

func (m *SessionMapper) TurnToRecord(sessionId uuid.UUID, t *store.Turn) *model.TurnRecord {
	if t == nil {
		return nil
	}

	return &model.TurnRecord{
		Id:        t.Id,
		SessionId: sessionId,
		Role:      t.Role,
		Text:      t.Text,
		CreatedAt: t.CreatedAt,
	}
}
