package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Status      Status     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatorID   *uuid.UUID `gorm:"type:char(36)" json:"creator_id"`
	ModifierID  *uuid.UUID `gorm:"type:char(36)" json:"modifier_id"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Creator      *User                `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"-"`
	Modifier     *User                `gorm:"foreignKey:ModifierID;constraint:OnDelete:SET NULL" json:"-"`
	Contributors []ProjectContributor `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ContributorIDs returns the ids of the linked contributors in stored order.
func (p *Project) ContributorIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(p.Contributors))
	for i, c := range p.Contributors {
		ids[i] = c.UserID
	}
	return ids
}
