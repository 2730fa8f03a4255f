package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmittedTask records that a task was completed and is waiting for approval.
type SubmittedTask struct {
	ID             uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	TaskID         uuid.UUID  `gorm:"type:char(36);not null;index" json:"task_id"`
	ProjectID      uuid.UUID  `gorm:"type:char(36);not null;index" json:"project_id"`
	SubmissionDate time.Time  `gorm:"autoCreateTime;index" json:"submission_date"`
	IsApproved     bool       `gorm:"not null" json:"is_approved"`
	Remarks        *string    `gorm:"type:text" json:"remarks"`
	CreatorID      *uuid.UUID `gorm:"type:char(36)" json:"creator_id"`
	ModifierID     *uuid.UUID `gorm:"type:char(36)" json:"modifier_id"`

	// Relations
	Task     *Task    `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Project  *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Creator  *User    `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"-"`
	Modifier *User    `gorm:"foreignKey:ModifierID;constraint:OnDelete:SET NULL" json:"-"`
}

func (s *SubmittedTask) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
