package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/constants"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/repository"
	"github.com/yukikurage/task-assigner/internal/utils"
	"github.com/yukikurage/task-assigner/internal/validation"
	"gorm.io/gorm"
)

const (
	msgTitleRequired        = "Title is required field!"
	msgTitleEmpty           = "Title cannot be empty!"
	msgProjectRequired      = "Project is required field!"
	msgProjectInvalid       = "Invalid project UUID!"
	msgAssigneeInvalid      = "Invalid assignee UUID!"
	msgAssigneeDoesNotExist = "Assignee does not exist!"
	msgAssigneeNotUser      = "Task can only be assigned to a user!"
	msgTaskNotFound         = "Task does not exist!"
	msgTextRequired         = "Text is required field!"
	msgAIUnavailable        = "AI service is not configured"
	msgAIFailed             = "AI service could not generate tasks"
	msgAINoTasks            = "No tasks could be generated from the text"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	generator   TaskGenerator
}

// NewTaskService creates a new TaskService. generator may be nil, in which case
// drafting reports the AI service as unavailable.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository, generator TaskGenerator) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Project     string
	Assignee    string
}

// EditTaskInput represents a partial task update. AssigneeSet with a nil Assignee
// clears the assignment.
type EditTaskInput struct {
	Title       *string
	Description *string
	Project     *string
	AssigneeSet bool
	Assignee    *string
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	Project    string
	Assignee   string
	Status     string
	Pagination utils.PaginationParams
}

// GenerateTasksInput represents input for AI task drafting
type GenerateTasksInput struct {
	Project string
	Text    string
}

// CreateTask validates input and creates a Draft task
func (s *TaskService) CreateTask(actor *models.User, input CreateTaskInput) (*models.Task, error) {
	if fe := validation.First(
		validation.Required("title", input.Title, msgTitleRequired),
		validation.Required("description", input.Description, msgDescriptionRequired),
		validation.Required("project", input.Project, msgProjectRequired),
		validation.Check("project", input.Project, validation.ValidateUUID, msgProjectInvalid),
	); fe != nil {
		return nil, invalid(TitleTask, fe)
	}

	projectID, err := s.requireProject(TitleTask, input.Project)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Status:      models.StatusDraft,
		ProjectID:   projectID,
		CreatorID:   &actor.ID,
	}

	if input.Assignee != "" {
		assignee, err := s.resolveAssignee(input.Assignee)
		if err != nil {
			return nil, err
		}
		task.AssigneeID = &assignee.ID
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	slog.Info("task created", "task_id", task.ID, "project_id", projectID, "creator_id", actor.ID)
	return task, nil
}

// EditTask applies a partial update. A new assignee must hold the USER role.
func (s *TaskService) EditTask(actor *models.User, taskID string, input EditTaskInput) (*models.Task, error) {
	id, err := parseID(TitleTask, "id", taskID, invalidUUIDMessage)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, TitleTask, "id", msgTaskNotFound, "task")
	}

	var rules []validation.Rule
	if input.Title != nil {
		rules = append(rules, validation.Required("title", *input.Title, msgTitleEmpty))
	}
	if input.Description != nil {
		rules = append(rules, validation.Required("description", *input.Description, msgDescriptionEmpty))
	}
	if input.Project != nil {
		rules = append(rules, validation.Check("project", *input.Project, validation.ValidateUUID, msgProjectInvalid))
	}
	if fe := validation.First(rules...); fe != nil {
		return nil, invalid(TitleTask, fe)
	}

	if input.Project != nil {
		projectID, err := s.requireProject(TitleTask, *input.Project)
		if err != nil {
			return nil, err
		}
		task.ProjectID = projectID
	}

	if input.AssigneeSet {
		if input.Assignee == nil {
			task.AssigneeID = nil
		} else {
			assignee, err := s.resolveAssignee(*input.Assignee)
			if err != nil {
				return nil, err
			}
			if assignee.Role != models.RoleUser {
				return nil, apierrors.Validation(TitleTask, msgAssigneeNotUser).WithField("assignee")
			}
			task.AssigneeID = &assignee.ID
		}
	}

	if input.Title != nil {
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	task.ModifierID = &actor.ID

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	slog.Info("task edited", "task_id", task.ID, "modifier_id", actor.ID)
	return task, nil
}

// ListTasks returns a page of tasks, newest first
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{Pagination: input.Pagination}

	if input.Project != "" {
		id, err := parseID(TitleTask, "project", input.Project, msgProjectInvalid)
		if err != nil {
			return nil, 0, err
		}
		filter.ProjectID = &id
	}
	if input.Assignee != "" {
		id, err := parseID(TitleTask, "assignee", input.Assignee, msgAssigneeInvalid)
		if err != nil {
			return nil, 0, err
		}
		filter.AssigneeID = &id
	}
	if input.Status != "" {
		status := models.Status(input.Status)
		if !status.IsValid() {
			return nil, 0, apierrors.Validation(TitleTask, msgStatusInvalid).WithField("status")
		}
		filter.Status = &status
	}

	tasks, total, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GenerateTasks drafts tasks for a project from free text. Nothing is stored.
func (s *TaskService) GenerateTasks(ctx context.Context, input GenerateTasksInput) ([]GeneratedTask, error) {
	if s.generator == nil {
		return nil, apierrors.Unavailable(TitleTaskGenerate, msgAIUnavailable)
	}

	if fe := validation.First(
		validation.Required("project", input.Project, msgProjectRequired),
		validation.Check("project", input.Project, validation.ValidateUUID, msgProjectInvalid),
		validation.Required("text", input.Text, msgTextRequired),
	); fe != nil {
		return nil, invalid(TitleTaskGenerate, fe)
	}

	projectID, _ := uuid.Parse(input.Project)
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, lookupErr(err, TitleTaskGenerate, "project", msgProjectNotFound, "project")
	}

	drafts, err := s.generator.GenerateTasks(ctx, ProjectBrief{
		Name:        project.Name,
		Description: project.Description,
	}, input.Text)
	if err != nil {
		slog.Warn("task generation failed", "project_id", project.ID, "error", err)
		return nil, apierrors.Unavailable(TitleTaskGenerate, msgAIFailed)
	}

	valid := make([]GeneratedTask, 0, len(drafts))
	for _, draft := range drafts {
		draft.Title = strings.TrimSpace(draft.Title)
		draft.Description = strings.TrimSpace(draft.Description)
		if draft.Title == "" {
			continue
		}
		valid = append(valid, draft)
		if len(valid) == constants.MaxAIGeneratedTasks {
			break
		}
	}

	if len(valid) == 0 {
		slog.Info("task generation returned nothing usable", "project_id", project.ID, "raw", len(drafts))
		return nil, apierrors.Validation(TitleTaskGenerate, msgAINoTasks)
	}

	return valid, nil
}

// requireProject parses value and checks the project exists.
func (s *TaskService) requireProject(title, value string) (uuid.UUID, error) {
	id, err := parseID(title, "project", value, msgProjectInvalid)
	if err != nil {
		return uuid.Nil, err
	}

	exists, err := s.projectRepo.Exists(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to find project: %w", err)
	}
	if !exists {
		return uuid.Nil, apierrors.NotFound(title, msgProjectNotFound).WithField("project")
	}
	return id, nil
}

// resolveAssignee parses value and loads the user it names.
func (s *TaskService) resolveAssignee(value string) (*models.User, error) {
	id, err := parseID(TitleTask, "assignee", value, msgAssigneeInvalid)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound(TitleTask, msgAssigneeDoesNotExist).WithField("assignee")
		}
		return nil, fmt.Errorf("failed to find assignee: %w", err)
	}
	return user, nil
}
