package model

import (
	"time"

	"github.com/google/uuid"
)

// Membership joins a user to a project. The partial unique index on
// project_id where is_admin = true is what enforces the single admin per
// project at the storage layer; the application never updates is_admin in
// place.
type Membership struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex:idx_admin_per_project,where:is_admin = true" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Membership <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Membership <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Membership) TableName() string { return "memberships" }
