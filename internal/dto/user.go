package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/constants"
	"github.com/yukikurage/task-assigner/internal/models"
)

// UserDTO represents a user profile in API responses
type UserDTO struct {
	ID          uuid.UUID     `json:"id"`
	Slug        string        `json:"slug"`
	FullName    string        `json:"full_name"`
	Phone       *string       `json:"phone"`
	Email       *string       `json:"email"`
	Gender      models.Gender `json:"gender"`
	DateOfBirth *string       `json:"date_of_birth"`
	ProfilePic  *string       `json:"profile_pic"`
	Role        models.Role   `json:"role"`
	IsActive    bool          `json:"is_active"`
	JoinedDate  time.Time     `json:"joined_date"`
}

// LoginDTO is the profile plus the issued token pair
type LoginDTO struct {
	UserDTO
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AccessDTO carries a refreshed access token
type AccessDTO struct {
	Access string `json:"access"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:         user.ID,
		Slug:       user.Slug,
		FullName:   user.FullName,
		Phone:      user.Phone,
		Email:      user.Email,
		Gender:     user.Gender,
		ProfilePic: user.ProfilePic,
		Role:       user.Role,
		IsActive:   user.IsActive,
		JoinedDate: user.JoinedDate,
	}
	if user.DateOfBirth != nil {
		dob := time.Time(*user.DateOfBirth).Format(constants.DateOfBirthLayout)
		dto.DateOfBirth = &dob
	}
	return dto
}
