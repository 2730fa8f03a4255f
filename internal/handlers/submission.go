package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/dto"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/services"
	"github.com/yukikurage/task-assigner/internal/utils"
)

// SubmissionHandler handles submitted task endpoints.
type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// CreateSubmission records that the caller finished a task.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	type CreateSubmissionRequest struct {
		Task    string  `json:"task"`
		Project string  `json:"project"`
		Remarks *string `json:"remarks"`
	}

	user, ok := actor(c)
	if !ok {
		return
	}

	var req CreateSubmissionRequest
	if !bindJSON(c, services.TitleSubmitTask, &req) {
		return
	}

	submission, err := h.submissionService.CreateSubmission(user, services.CreateSubmissionInput{
		Task:    req.Task,
		Project: req.Project,
		Remarks: req.Remarks,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleSubmitTask, "Submit Task created successfully", dto.ToSubmissionDTO(*submission))
}

// EditSubmission reviews a submission. Approving it moves the task to Ongoing.
func (h *SubmissionHandler) EditSubmission(c *gin.Context) {
	type EditSubmissionRequest struct {
		IsApproved *bool                `json:"is_approved"`
		Remarks    dto.Nullable[string] `json:"remarks"`
	}

	user, ok := actor(c)
	if !ok {
		return
	}

	var req EditSubmissionRequest
	if !bindJSON(c, services.TitleSubmitTask, &req) {
		return
	}

	submission, err := h.submissionService.EditSubmission(user, c.Param("id"), services.EditSubmissionInput{
		IsApproved: req.IsApproved,
		RemarksSet: req.Remarks.Set,
		Remarks:    req.Remarks.Value,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleSubmitTask, "Submit Task edited successfully", dto.ToSubmissionDTO(*submission))
}

// ListSubmissions returns one page of submissions, newest first.
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	submissions, total, err := h.submissionService.ListSubmissions(services.ListSubmissionsInput{
		Task:       c.Query("task"),
		Project:    c.Query("project"),
		IsApproved: c.Query("is_approved"),
		Pagination: params,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleSubmitTask, "Submit Task Listed successfully",
		dto.NewPage(submissions, total, params, dto.ToSubmissionDTO))
}
