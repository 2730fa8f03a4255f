package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	Slug         string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	FullName     string          `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone        *string         `gorm:"type:varchar(20);uniqueIndex" json:"phone"`
	Email        *string         `gorm:"type:varchar(254);uniqueIndex" json:"email"`
	Gender       Gender          `gorm:"type:varchar(10);not null" json:"gender"`
	DateOfBirth  *datatypes.Date `json:"date_of_birth"`
	ProfilePic   *string         `gorm:"type:varchar(500)" json:"profile_pic"`
	Role         Role            `gorm:"type:varchar(20);not null;index" json:"role"`
	IsActive     bool            `gorm:"not null" json:"is_active"`
	IsBlocked    bool            `gorm:"not null" json:"is_blocked"`
	PasswordHash string          `gorm:"type:varchar(255);not null" json:"-"`
	JoinedDate   time.Time       `gorm:"autoCreateTime" json:"joined_date"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate assigns the primary key.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
