package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SessionRecord struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Artifact   string         `gorm:"type:text;not null"`
	ActiveView string         `gorm:"type:text;not null"`
	VisualRef  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (SessionRecord) TableName() string {
	return "studio_sessions"
}

type TurnRecord struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:text;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TurnRecord) TableName() string {
	return "studio_turns"
}
