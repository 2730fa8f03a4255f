package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/repository"
	"github.com/yukikurage/task-assigner/internal/utils"
	"github.com/yukikurage/task-assigner/internal/validation"
)

const (
	msgTaskRequired         = "Task is required field!"
	msgTaskInvalid          = "Invalid task UUID!"
	msgSubmissionNotFound   = "Submit Task does not exist!"
	msgIsApprovedInvalid    = "Invalid is_approved filter!"
	msgApprovalTaskNotFound = "Task of this submission no longer exists!"
)

// SubmissionService handles submitted task business logic
type SubmissionService struct {
	submissionRepo repository.SubmissionRepository
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
}

// NewSubmissionService creates a new SubmissionService
func NewSubmissionService(submissionRepo repository.SubmissionRepository, taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
	}
}

// CreateSubmissionInput represents input for submitting a task
type CreateSubmissionInput struct {
	Task    string
	Project string
	Remarks *string
}

// EditSubmissionInput represents a partial submission update
type EditSubmissionInput struct {
	IsApproved *bool
	RemarksSet bool
	Remarks    *string
}

// ListSubmissionsInput represents filters for listing submissions
type ListSubmissionsInput struct {
	Task       string
	Project    string
	IsApproved string
	Pagination utils.PaginationParams
}

// CreateSubmission records that actor finished a task. Submissions start unapproved.
func (s *SubmissionService) CreateSubmission(actor *models.User, input CreateSubmissionInput) (*models.SubmittedTask, error) {
	if fe := validation.First(
		validation.Required("task", input.Task, msgTaskRequired),
		validation.Check("task", input.Task, validation.ValidateUUID, msgTaskInvalid),
	); fe != nil {
		return nil, invalid(TitleSubmitTask, fe)
	}

	taskID, _ := parseID(TitleSubmitTask, "task", input.Task, msgTaskInvalid)
	exists, err := s.taskRepo.Exists(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	if !exists {
		return nil, apierrors.NotFound(TitleSubmitTask, msgTaskNotFound).WithField("task")
	}

	if fe := validation.First(
		validation.Required("project", input.Project, msgProjectRequired),
		validation.Check("project", input.Project, validation.ValidateUUID, msgProjectInvalid),
	); fe != nil {
		return nil, invalid(TitleSubmitTask, fe)
	}

	projectID, _ := parseID(TitleSubmitTask, "project", input.Project, msgProjectInvalid)
	exists, err = s.projectRepo.Exists(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	if !exists {
		return nil, apierrors.NotFound(TitleSubmitTask, msgProjectNotFound).WithField("project")
	}

	submission := &models.SubmittedTask{
		TaskID:    taskID,
		ProjectID: projectID,
		Remarks:   trimmedOrNil(input.Remarks),
		CreatorID: &actor.ID,
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, fmt.Errorf("failed to create submission: %w", err)
	}

	slog.Info("task submitted", "submission_id", submission.ID, "task_id", taskID, "creator_id", actor.ID)
	return submission, nil
}

// EditSubmission updates remarks and approval. Setting is_approved to true moves
// the task to Ongoing atomically with the submission update.
func (s *SubmissionService) EditSubmission(actor *models.User, submissionID string, input EditSubmissionInput) (*models.SubmittedTask, error) {
	id, err := parseID(TitleSubmitTask, "id", submissionID, invalidUUIDMessage)
	if err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, TitleSubmitTask, "id", msgSubmissionNotFound, "submission")
	}

	if input.IsApproved != nil {
		submission.IsApproved = *input.IsApproved
	}
	if input.RemarksSet {
		submission.Remarks = trimmedOrNil(input.Remarks)
	}
	submission.ModifierID = &actor.ID

	if input.IsApproved != nil && *input.IsApproved {
		err = s.submissionRepo.Approve(submission)
	} else {
		err = s.submissionRepo.Update(submission)
	}
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrTaskNotFound):
		return nil, apierrors.NotFound(TitleSubmitTask, msgApprovalTaskNotFound).WithField("task")
	case errors.Is(err, repository.ErrSubmissionNotFound):
		return nil, apierrors.NotFound(TitleSubmitTask, msgSubmissionNotFound).WithField("id")
	default:
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}

	if submission.IsApproved && input.IsApproved != nil {
		slog.Info("submission approved", "submission_id", submission.ID, "task_id", submission.TaskID, "approver_id", actor.ID)
	}
	return submission, nil
}

// ListSubmissions returns a page of submissions, newest first
func (s *SubmissionService) ListSubmissions(input ListSubmissionsInput) ([]models.SubmittedTask, int64, error) {
	filter := repository.SubmissionFilter{Pagination: input.Pagination}

	if input.Task != "" {
		id, err := parseID(TitleSubmitTask, "task", input.Task, msgTaskInvalid)
		if err != nil {
			return nil, 0, err
		}
		filter.TaskID = &id
	}
	if input.Project != "" {
		id, err := parseID(TitleSubmitTask, "project", input.Project, msgProjectInvalid)
		if err != nil {
			return nil, 0, err
		}
		filter.ProjectID = &id
	}
	if input.IsApproved != "" {
		approved, err := strconv.ParseBool(input.IsApproved)
		if err != nil {
			return nil, 0, apierrors.Validation(TitleSubmitTask, msgIsApprovedInvalid).WithField("is_approved")
		}
		filter.IsApproved = &approved
	}

	submissions, total, err := s.submissionRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}
	return submissions, total, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
