package repository

import (
	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/database"
	"github.com/yukikurage/task-assigner/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Omit(clause.Associations).Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Exists reports whether a task with the ID exists
func (r *GormTaskRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves the task columns
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Omit(clause.Associations).Save(task).Error
}

// List retrieves tasks with filtering and pagination
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{})

	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("tasks.assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := query.
		Scopes(database.NewestFirst("created_at"), database.Paginate(filter.Pagination)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}
