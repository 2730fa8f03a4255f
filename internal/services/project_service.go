package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/repository"
	"github.com/yukikurage/task-assigner/internal/utils"
	"github.com/yukikurage/task-assigner/internal/validation"
)

const (
	msgNameRequired            = "Name is required field!"
	msgNameEmpty               = "Name cannot be empty!"
	msgDescriptionRequired     = "Description is required field!"
	msgDescriptionEmpty        = "Description cannot be empty!"
	msgStatusInvalid           = "Invalid status!"
	msgContributorInvalid      = "Invalid contributor UUID!"
	msgContributorDoesNotExist = "Contributor does not exist!"
	msgProjectNotFound         = "Project does not exist!"
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name         string
	Description  string
	Status       string
	Contributors []string
}

// EditProjectInput represents a partial project update. Nil fields are left as they
// are; a non-nil Contributors replaces the whole set.
type EditProjectInput struct {
	Name         *string
	Description  *string
	Status       *string
	Contributors *[]string
}

// ListProjectsInput represents filters for listing projects
type ListProjectsInput struct {
	Status     string
	Pagination utils.PaginationParams
}

// CreateProject creates a project owned by actor. Contributor ids only need to be
// well formed; ids that match no user are skipped when linking.
func (s *ProjectService) CreateProject(actor *models.User, input CreateProjectInput) (*models.Project, error) {
	rules := []validation.Rule{
		validation.Required("name", input.Name, msgNameRequired),
		validation.Required("description", input.Description, msgDescriptionRequired),
		statusRule(input.Status),
	}
	for _, id := range input.Contributors {
		rules = append(rules, validation.Check("contributors", id, validation.ValidateUUID, msgContributorInvalid))
	}
	if fe := validation.First(rules...); fe != nil {
		return nil, invalid(TitleProject, fe)
	}

	requested := mustParseIDs(input.Contributors)
	existing, err := s.userRepo.ExistingIDs(requested)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve contributors: %w", err)
	}
	if skipped := len(uniqueIDs(requested)) - len(existing); skipped > 0 {
		slog.Warn("skipping unknown contributors", "count", skipped)
	}

	status := models.Status(input.Status)
	if status == "" {
		status = models.StatusDraft
	}

	project := &models.Project{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		CreatorID:   &actor.ID,
	}

	if err := s.projectRepo.Create(project, keepOrder(requested, existing)); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("project created", "project_id", project.ID, "creator_id", actor.ID)
	return project, nil
}

// EditProject applies a partial update. Unlike creation, every contributor must be
// an existing user.
func (s *ProjectService) EditProject(actor *models.User, projectID string, input EditProjectInput) (*models.Project, error) {
	id, err := parseID(TitleProject, "id", projectID, invalidUUIDMessage)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, TitleProject, "id", msgProjectNotFound, "project")
	}

	var rules []validation.Rule
	if input.Name != nil {
		rules = append(rules, validation.Required("name", *input.Name, msgNameEmpty))
	}
	if input.Description != nil {
		rules = append(rules, validation.Required("description", *input.Description, msgDescriptionEmpty))
	}
	if input.Status != nil {
		status := *input.Status
		rules = append(rules, validation.Rule{
			Field:   "status",
			Valid:   func() bool { return models.Status(status).IsValid() },
			Message: msgStatusInvalid,
		})
	}
	if input.Contributors != nil {
		for _, cid := range *input.Contributors {
			rules = append(rules, validation.Check("contributors", cid, validation.ValidateUUID, msgContributorInvalid))
		}
	}
	if fe := validation.First(rules...); fe != nil {
		return nil, invalid(TitleProject, fe)
	}

	var contributors []uuid.UUID
	if input.Contributors != nil {
		contributors = uniqueIDs(mustParseIDs(*input.Contributors))
		existing, err := s.userRepo.ExistingIDs(contributors)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve contributors: %w", err)
		}
		if len(existing) != len(contributors) {
			return nil, apierrors.NotFound(TitleProject, msgContributorDoesNotExist).WithField("contributors")
		}
	}

	if input.Name != nil {
		project.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		project.Description = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil {
		project.Status = models.Status(*input.Status)
	}
	project.ModifierID = &actor.ID

	if err := s.projectRepo.Update(project, contributors); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	slog.Info("project edited", "project_id", project.ID, "modifier_id", actor.ID)
	return project, nil
}

// ListProjects returns a page of projects, newest first
func (s *ProjectService) ListProjects(input ListProjectsInput) ([]models.Project, int64, error) {
	filter := repository.ProjectFilter{Pagination: input.Pagination}

	if input.Status != "" {
		status := models.Status(input.Status)
		if !status.IsValid() {
			return nil, 0, apierrors.Validation(TitleProject, msgStatusInvalid).WithField("status")
		}
		filter.Status = &status
	}

	projects, total, err := s.projectRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// statusRule accepts an empty status, which means the default.
func statusRule(status string) validation.Rule {
	return validation.Rule{
		Field:   "status",
		Valid:   func() bool { return status == "" || models.Status(status).IsValid() },
		Message: msgStatusInvalid,
	}
}

// mustParseIDs parses ids that were already validated.
func mustParseIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if id, err := uuid.Parse(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// keepOrder returns the members of requested found in existing, in request order.
func keepOrder(requested, existing []uuid.UUID) []uuid.UUID {
	found := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	out := make([]uuid.UUID, 0, len(existing))
	for _, id := range uniqueIDs(requested) {
		if _, ok := found[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
