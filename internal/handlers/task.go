package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/dto"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/services"
	"github.com/yukikurage/task-assigner/internal/utils"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a Draft task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Project     string `json:"project"`
		Assignee    string `json:"assignee"`
	}

	user, ok := actor(c)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if !bindJSON(c, services.TitleTask, &req) {
		return
	}

	task, err := h.taskService.CreateTask(user, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Project:     req.Project,
		Assignee:    req.Assignee,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleTask, "Task created successfully", dto.ToTaskDTO(*task))
}

// EditTask applies a partial update to a task. An explicit null assignee unassigns it.
func (h *TaskHandler) EditTask(c *gin.Context) {
	type EditTaskRequest struct {
		Title       *string              `json:"title"`
		Description *string              `json:"description"`
		Project     *string              `json:"project"`
		Assignee    dto.Nullable[string] `json:"assignee"`
	}

	user, ok := actor(c)
	if !ok {
		return
	}

	var req EditTaskRequest
	if !bindJSON(c, services.TitleTask, &req) {
		return
	}

	task, err := h.taskService.EditTask(user, c.Param("id"), services.EditTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Project:     req.Project,
		AssigneeSet: req.Assignee.Set,
		Assignee:    req.Assignee.Value,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleTask, "Task edited successfully", dto.ToTaskDTO(*task))
}

// ListTasks returns one page of tasks, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.ListTasks(services.ListTasksInput{
		Project:    c.Query("project"),
		Assignee:   c.Query("assignee"),
		Status:     c.Query("status"),
		Pagination: params,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleTask, "Task Listed successfully",
		dto.NewPage(tasks, total, params, dto.ToTaskDTO))
}

// GenerateTasks drafts task suggestions for a project from free text. Nothing is saved.
func (h *TaskHandler) GenerateTasks(c *gin.Context) {
	type GenerateTasksRequest struct {
		Project string `json:"project"`
		Text    string `json:"text"`
	}

	var req GenerateTasksRequest
	if !bindJSON(c, services.TitleTaskGenerate, &req) {
		return
	}

	drafts, err := h.taskService.GenerateTasks(c.Request.Context(), services.GenerateTasksInput{
		Project: req.Project,
		Text:    req.Text,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleTaskGenerate, "Tasks generated successfully", drafts)
}
