package repository

import (
	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user. Unique index violations come back as one of the
	// ErrDuplicate* sentinels.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByPhone finds a user by phone number
	FindByPhone(phone string) (*models.User, error)

	// ExistsByPhone reports whether a user already holds the phone number
	ExistsByPhone(phone string) (bool, error)

	// ExistsByEmail reports whether a user already holds the email
	ExistsByEmail(email string) (bool, error)

	// ExistsBySlug reports whether a user already holds the slug
	ExistsBySlug(slug string) (bool, error)

	// ExistingIDs returns the subset of ids that belong to stored users
	ExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a project and links the given contributors in one transaction
	Create(project *models.Project, contributorIDs []uuid.UUID) error

	// FindByID finds a project by ID with its contributors
	FindByID(id uuid.UUID) (*models.Project, error)

	// Exists reports whether a project with the ID exists
	Exists(id uuid.UUID) (bool, error)

	// Update saves the project columns. A non-nil contributorIDs replaces the
	// contributor set in the same transaction; nil leaves it untouched.
	Update(project *models.Project, contributorIDs []uuid.UUID) error

	// List retrieves projects with filtering and pagination
	List(filter ProjectFilter) ([]models.Project, int64, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uuid.UUID) (*models.Task, error)

	// Exists reports whether a task with the ID exists
	Exists(id uuid.UUID) (bool, error)

	// Update saves the task columns
	Update(task *models.Task) error

	// List retrieves tasks with filtering and pagination
	List(filter TaskFilter) ([]models.Task, int64, error)
}

// SubmissionRepository defines the interface for submitted task data access
type SubmissionRepository interface {
	// Create creates a new submission
	Create(submission *models.SubmittedTask) error

	// FindByID finds a submission by ID
	FindByID(id uuid.UUID) (*models.SubmittedTask, error)

	// Update saves the approval flag, remarks and modifier of a submission
	Update(submission *models.SubmittedTask) error

	// Approve saves the submission and moves its task to Ongoing in one transaction
	Approve(submission *models.SubmittedTask) error

	// List retrieves submissions with filtering and pagination
	List(filter SubmissionFilter) ([]models.SubmittedTask, int64, error)
}

// ProjectFilter holds filtering options for listing projects
type ProjectFilter struct {
	Status     *models.Status
	Pagination utils.PaginationParams
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID  *uuid.UUID
	AssigneeID *uuid.UUID
	Status     *models.Status
	Pagination utils.PaginationParams
}

// SubmissionFilter holds filtering options for listing submissions
type SubmissionFilter struct {
	TaskID     *uuid.UUID
	ProjectID  *uuid.UUID
	IsApproved *bool
	Pagination utils.PaginationParams
}
