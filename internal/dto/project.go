package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Status       models.Status `json:"status"`
	Contributors []uuid.UUID   `json:"contributors"`
	Creator      *uuid.UUID    `json:"creator"`
	Modifier     *uuid.UUID    `json:"modifier"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		Status:       project.Status,
		Contributors: project.ContributorIDs(),
		Creator:      project.CreatorID,
		Modifier:     project.ModifierID,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}
