package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vibecode-be/internal/mapper"
	"vibecode-be/internal/model"
	"vibecode-be/internal/repository/contract"
	"vibecode-be/pkg/store"
)

type SessionArchiveRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionArchiveRepository(db *gorm.DB) contract.SessionArchiveRepository {
	return &SessionArchiveRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionArchiveRepositoryImpl) Create(ctx context.Context, session *store.Session) error {
	m := r.mapper.SessionToRecord(session)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
}

func (r *SessionArchiveRepositoryImpl) AppendTurn(ctx context.Context, sessionId uuid.UUID, turn *store.Turn) error {
	m := r.mapper.TurnToRecord(sessionId, turn)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
}

func (r *SessionArchiveRepositoryImpl) UpdateArtifact(ctx context.Context, sessionId uuid.UUID, artifact string, activeView string) error {
	return r.db.WithContext(ctx).
		Model(&model.SessionRecord{}).
		Where("id = ?", sessionId).
		Updates(map[string]interface{}{
			"artifact":    artifact,
			"active_view": activeView,
		}).Error
}

func (r *SessionArchiveRepositoryImpl) FindAll(ctx context.Context) ([]*model.SessionRecord, error) {
	var records []*model.SessionRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
