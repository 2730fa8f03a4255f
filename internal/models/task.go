package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      Status     `gorm:"type:varchar(20);not null" json:"status"`
	ProjectID   uuid.UUID  `gorm:"type:char(36);not null;index" json:"project_id"`
	AssigneeID  *uuid.UUID `gorm:"type:char(36);index" json:"assignee_id"`
	CreatorID   *uuid.UUID `gorm:"type:char(36)" json:"creator_id"`
	ModifierID  *uuid.UUID `gorm:"type:char(36)" json:"modifier_id"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Project  *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Assignee *User    `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL" json:"-"`
	Creator  *User    `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"-"`
	Modifier *User    `gorm:"foreignKey:ModifierID;constraint:OnDelete:SET NULL" json:"-"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
