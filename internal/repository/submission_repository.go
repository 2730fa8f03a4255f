package repository

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/database"
	"github.com/yukikurage/task-assigner/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSubmissionRepository is a GORM implementation of SubmissionRepository
type GormSubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &GormSubmissionRepository{db: db}
}

// Create creates a new submission
func (r *GormSubmissionRepository) Create(submission *models.SubmittedTask) error {
	return r.db.Omit(clause.Associations).Create(submission).Error
}

// FindByID finds a submission by ID
func (r *GormSubmissionRepository) FindByID(id uuid.UUID) (*models.SubmittedTask, error) {
	var submission models.SubmittedTask
	if err := r.db.Where("id = ?", id).First(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// Update saves the approval flag, remarks and modifier of a submission
func (r *GormSubmissionRepository) Update(submission *models.SubmittedTask) error {
	return updateSubmission(r.db, submission)
}

// Approve saves the submission and moves its task to Ongoing in one transaction.
// If the task no longer exists the whole approval is rolled back.
func (r *GormSubmissionRepository) Approve(submission *models.SubmittedTask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := updateSubmission(tx, submission); err != nil {
			return err
		}

		result := tx.Model(&models.Task{}).
			Where("id = ?", submission.TaskID).
			Update("status", models.StatusOngoing)
		if result.Error != nil {
			return fmt.Errorf("update task status: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}

		return nil
	})
}

func updateSubmission(db *gorm.DB, submission *models.SubmittedTask) error {
	result := db.Model(submission).
		Select("IsApproved", "Remarks", "ModifierID").
		Updates(submission)
	if result.Error != nil {
		return fmt.Errorf("update submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// List retrieves submissions with filtering and pagination
func (r *GormSubmissionRepository) List(filter SubmissionFilter) ([]models.SubmittedTask, int64, error) {
	query := r.db.Model(&models.SubmittedTask{})

	if filter.TaskID != nil {
		query = query.Where("submitted_tasks.task_id = ?", *filter.TaskID)
	}
	if filter.ProjectID != nil {
		query = query.Where("submitted_tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.IsApproved != nil {
		query = query.Where("submitted_tasks.is_approved = ?", *filter.IsApproved)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []models.SubmittedTask
	if err := query.
		Scopes(database.NewestFirst("submission_date"), database.Paginate(filter.Pagination)).
		Find(&submissions).Error; err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}
