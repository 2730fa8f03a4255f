package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/constants"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/repository"
	"github.com/yukikurage/task-assigner/internal/utils"
)

func (suite *ServiceTestSuite) createProject(actor *models.User) *models.Project {
	project, err := suite.projects.CreateProject(actor, CreateProjectInput{Name: "Website", Description: "d"})
	suite.Require().NoError(err)
	return project
}

func (suite *ServiceTestSuite) TestCreateTask() {
	hr := suite.hr()
	worker := suite.createUser("worker@example.com", "9841000020", models.RoleUser)
	project := suite.createProject(hr)

	task, err := suite.tasks.CreateTask(hr, CreateTaskInput{
		Title:       "Landing page",
		Description: "Build it",
		Project:     project.ID.String(),
		Assignee:    worker.ID.String(),
	})
	suite.Require().NoError(err)
	suite.Equal(models.StatusDraft, task.Status)
	suite.Equal(project.ID, task.ProjectID)
	suite.Equal(worker.ID, *task.AssigneeID)
	suite.Equal(hr.ID, *task.CreatorID)
}

func (suite *ServiceTestSuite) TestCreateTask_Failures() {
	hr := suite.hr()
	project := suite.createProject(hr)

	tests := []struct {
		name    string
		input   CreateTaskInput
		kind    apierrors.Kind
		message string
	}{
		{"title", CreateTaskInput{Description: "d", Project: "x"}, apierrors.KindValidation, msgTitleRequired},
		{"description", CreateTaskInput{Title: "t", Project: "x"}, apierrors.KindValidation, msgDescriptionRequired},
		{"project required", CreateTaskInput{Title: "t", Description: "d"}, apierrors.KindValidation, msgProjectRequired},
		{"project uuid", CreateTaskInput{Title: "t", Description: "d", Project: "x"}, apierrors.KindValidation, msgProjectInvalid},
		{"project exists", CreateTaskInput{Title: "t", Description: "d", Project: uuid.NewString()}, apierrors.KindNotFound, msgProjectNotFound},
		{"assignee uuid", CreateTaskInput{Title: "t", Description: "d", Project: project.ID.String(), Assignee: "x"}, apierrors.KindValidation, msgAssigneeInvalid},
		{"assignee exists", CreateTaskInput{Title: "t", Description: "d", Project: project.ID.String(), Assignee: uuid.NewString()}, apierrors.KindNotFound, msgAssigneeDoesNotExist},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.tasks.CreateTask(hr, tt.input)
			suite.requireAPIError(err, tt.kind, tt.message)
		})
	}
}

func (suite *ServiceTestSuite) TestEditTask_AssigneeMustBeUser() {
	hr := suite.hr()
	supervisor := suite.createUser("sup@example.com", "9841000021", models.RoleSupervisor)
	worker := suite.createUser("worker@example.com", "9841000022", models.RoleUser)
	project := suite.createProject(hr)

	task, err := suite.tasks.CreateTask(hr, CreateTaskInput{Title: "t", Description: "d", Project: project.ID.String()})
	suite.Require().NoError(err)

	hrID := hr.ID.String()
	_, err = suite.tasks.EditTask(supervisor, task.ID.String(), EditTaskInput{AssigneeSet: true, Assignee: &hrID})
	suite.requireAPIError(err, apierrors.KindValidation, msgAssigneeNotUser)

	workerID := worker.ID.String()
	edited, err := suite.tasks.EditTask(supervisor, task.ID.String(), EditTaskInput{AssigneeSet: true, Assignee: &workerID})
	suite.Require().NoError(err)
	suite.Equal(worker.ID, *edited.AssigneeID)
	suite.Equal(supervisor.ID, *edited.ModifierID)

	edited, err = suite.tasks.EditTask(supervisor, task.ID.String(), EditTaskInput{AssigneeSet: true})
	suite.Require().NoError(err)
	suite.Nil(edited.AssigneeID)

	stored, err := repository.NewTaskRepository(suite.db).FindByID(task.ID)
	suite.Require().NoError(err)
	suite.Nil(stored.AssigneeID)
	suite.Equal(models.StatusDraft, stored.Status)
}

func (suite *ServiceTestSuite) TestEditTask_Fields() {
	hr := suite.hr()
	project := suite.createProject(hr)
	other := suite.createProject(hr)

	task, err := suite.tasks.CreateTask(hr, CreateTaskInput{Title: "t", Description: "d", Project: project.ID.String()})
	suite.Require().NoError(err)

	title := "new title"
	otherID := other.ID.String()
	edited, err := suite.tasks.EditTask(hr, task.ID.String(), EditTaskInput{Title: &title, Project: &otherID})
	suite.Require().NoError(err)
	suite.Equal("new title", edited.Title)
	suite.Equal("d", edited.Description)
	suite.Equal(other.ID, edited.ProjectID)

	_, err = suite.tasks.EditTask(hr, "nope", EditTaskInput{})
	suite.requireAPIError(err, apierrors.KindValidation, invalidUUIDMessage)

	_, err = suite.tasks.EditTask(hr, uuid.NewString(), EditTaskInput{})
	suite.requireAPIError(err, apierrors.KindNotFound, msgTaskNotFound)

	empty := " "
	_, err = suite.tasks.EditTask(hr, task.ID.String(), EditTaskInput{Description: &empty})
	suite.requireAPIError(err, apierrors.KindValidation, msgDescriptionEmpty)

	missing := uuid.NewString()
	_, err = suite.tasks.EditTask(hr, task.ID.String(), EditTaskInput{Project: &missing})
	suite.requireAPIError(err, apierrors.KindNotFound, msgProjectNotFound)
}

func (suite *ServiceTestSuite) TestListTasks() {
	hr := suite.hr()
	project := suite.createProject(hr)

	for i := 0; i < 3; i++ {
		_, err := suite.tasks.CreateTask(hr, CreateTaskInput{Title: "t", Description: "d", Project: project.ID.String()})
		suite.Require().NoError(err)
	}

	tasks, total, err := suite.tasks.ListTasks(ListTasksInput{
		Project:    project.ID.String(),
		Status:     string(models.StatusDraft),
		Pagination: utils.NewPaginationParams(1, 2),
	})
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(tasks, 2)

	_, _, err = suite.tasks.ListTasks(ListTasksInput{Assignee: "x"})
	suite.requireAPIError(err, apierrors.KindValidation, msgAssigneeInvalid)

	_, _, err = suite.tasks.ListTasks(ListTasksInput{Status: "Finished"})
	suite.requireAPIError(err, apierrors.KindValidation, msgStatusInvalid)
}

type fakeGenerator struct {
	tasks   []GeneratedTask
	err     error
	project ProjectBrief
	text    string
}

func (f *fakeGenerator) GenerateTasks(_ context.Context, project ProjectBrief, text string) ([]GeneratedTask, error) {
	f.project = project
	f.text = text
	return f.tasks, f.err
}

func (suite *ServiceTestSuite) TestGenerateTasks_Unconfigured() {
	_, err := suite.tasks.GenerateTasks(context.Background(), GenerateTasksInput{Project: uuid.NewString(), Text: "x"})
	suite.requireAPIError(err, apierrors.KindUnavailable, msgAIUnavailable)
}

func (suite *ServiceTestSuite) TestGenerateTasks() {
	hr := suite.hr()
	project := suite.createProject(hr)

	drafts := []GeneratedTask{{Title: "  "}, {Title: " Write copy ", Description: " hero text "}}
	for i := 0; i < constants.MaxAIGeneratedTasks+5; i++ {
		drafts = append(drafts, GeneratedTask{Title: "extra"})
	}
	gen := &fakeGenerator{tasks: drafts}
	suite.tasks.generator = gen

	tasks, err := suite.tasks.GenerateTasks(context.Background(), GenerateTasksInput{
		Project: project.ID.String(),
		Text:    "We need copy for the landing page",
	})
	suite.Require().NoError(err)
	suite.Len(tasks, constants.MaxAIGeneratedTasks)
	suite.Equal(GeneratedTask{Title: "Write copy", Description: "hero text"}, tasks[0])
	suite.Equal("Website", gen.project.Name)
	suite.Equal("We need copy for the landing page", gen.text)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *ServiceTestSuite) TestGenerateTasks_Failures() {
	hr := suite.hr()
	project := suite.createProject(hr)
	gen := &fakeGenerator{}
	suite.tasks.generator = gen

	_, err := suite.tasks.GenerateTasks(context.Background(), GenerateTasksInput{Project: project.ID.String()})
	suite.requireAPIError(err, apierrors.KindValidation, msgTextRequired)

	_, err = suite.tasks.GenerateTasks(context.Background(), GenerateTasksInput{Project: uuid.NewString(), Text: "x"})
	suite.requireAPIError(err, apierrors.KindNotFound, msgProjectNotFound)

	gen.tasks = []GeneratedTask{{Title: ""}}
	_, err = suite.tasks.GenerateTasks(context.Background(), GenerateTasksInput{Project: project.ID.String(), Text: "x"})
	suite.requireAPIError(err, apierrors.KindValidation, msgAINoTasks)

	gen.err = errors.New("rate limited")
	_, err = suite.tasks.GenerateTasks(context.Background(), GenerateTasksInput{Project: project.ID.String(), Text: "x"})
	suite.requireAPIError(err, apierrors.KindUnavailable, msgAIFailed)
}
