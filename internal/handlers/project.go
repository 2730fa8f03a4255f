package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/dto"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/services"
	"github.com/yukikurage/task-assigner/internal/utils"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project owned by the caller.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name         string   `json:"name"`
		Description  string   `json:"description"`
		Status       string   `json:"status"`
		Contributors []string `json:"contributors"`
	}

	user, ok := actor(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if !bindJSON(c, services.TitleProject, &req) {
		return
	}

	project, err := h.projectService.CreateProject(user, services.CreateProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		Contributors: req.Contributors,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleProject, "Project created successfully", dto.ToProjectDTO(*project))
}

// EditProject applies a partial update to a project.
func (h *ProjectHandler) EditProject(c *gin.Context) {
	type EditProjectRequest struct {
		Name         *string   `json:"name"`
		Description  *string   `json:"description"`
		Status       *string   `json:"status"`
		Contributors *[]string `json:"contributors"`
	}

	user, ok := actor(c)
	if !ok {
		return
	}

	var req EditProjectRequest
	if !bindJSON(c, services.TitleProject, &req) {
		return
	}

	project, err := h.projectService.EditProject(user, c.Param("id"), services.EditProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		Contributors: req.Contributors,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleProject, "Project edited successfully", dto.ToProjectDTO(*project))
}

// ListProjects returns one page of projects, newest first.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(services.ListProjectsInput{
		Status:     c.Query("status"),
		Pagination: params,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleProject, "Project Listed successfully",
		dto.NewPage(projects, total, params, dto.ToProjectDTO))
}
