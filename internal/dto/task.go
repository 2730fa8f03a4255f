package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      models.Status `json:"status"`
	Project     uuid.UUID     `json:"project"`
	Assignee    *uuid.UUID    `json:"assignee"`
	Creator     *uuid.UUID    `json:"creator"`
	Modifier    *uuid.UUID    `json:"modifier"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// SubmissionDTO represents a submitted task in API responses
type SubmissionDTO struct {
	ID             uuid.UUID  `json:"id"`
	Task           uuid.UUID  `json:"task"`
	Project        uuid.UUID  `json:"project"`
	SubmissionDate time.Time  `json:"submission_date"`
	IsApproved     bool       `json:"is_approved"`
	Remarks        *string    `json:"remarks"`
	Creator        *uuid.UUID `json:"creator"`
	Modifier       *uuid.UUID `json:"modifier"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Project:     task.ProjectID,
		Assignee:    task.AssigneeID,
		Creator:     task.CreatorID,
		Modifier:    task.ModifierID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToSubmissionDTO converts a SubmittedTask model to SubmissionDTO
func ToSubmissionDTO(submission models.SubmittedTask) SubmissionDTO {
	return SubmissionDTO{
		ID:             submission.ID,
		Task:           submission.TaskID,
		Project:        submission.ProjectID,
		SubmissionDate: submission.SubmissionDate,
		IsApproved:     submission.IsApproved,
		Remarks:        submission.Remarks,
		Creator:        submission.CreatorID,
		Modifier:       submission.ModifierID,
	}
}
