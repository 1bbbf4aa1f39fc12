package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`
	// FilePath is the opaque blob-store key; only the blob layer interprets it.
	FilePath    string `gorm:"type:text;not null" json:"file_path"`
	ContentType string `gorm:"type:text;not null" json:"content_type"`
	SizeB       int64  `gorm:"column:size_bigint;type:bigint;not null" json:"size_b"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Document <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Document) TableName() string { return "documents" }
