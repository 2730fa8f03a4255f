package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectContributor struct {
	ProjectID uuid.UUID `gorm:"type:char(36);primaryKey" json:"project_id"`
	UserID    uuid.UUID `gorm:"type:char(36);primaryKey;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
