package services

import (
	"github.com/google/uuid"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/utils"
)

func (suite *ServiceTestSuite) createTask(actor *models.User, project *models.Project) *models.Task {
	task, err := suite.tasks.CreateTask(actor, CreateTaskInput{Title: "t", Description: "d", Project: project.ID.String()})
	suite.Require().NoError(err)
	return task
}

func (suite *ServiceTestSuite) taskStatus(id uuid.UUID) models.Status {
	var task models.Task
	suite.Require().NoError(suite.db.First(&task, "id = ?", id).Error)
	return task.Status
}

func (suite *ServiceTestSuite) TestCreateSubmission() {
	hr := suite.hr()
	worker := suite.createUser("worker@example.com", "9841000030", models.RoleUser)
	project := suite.createProject(hr)
	task := suite.createTask(hr, project)

	remarks := "  done  "
	submission, err := suite.submissions.CreateSubmission(worker, CreateSubmissionInput{
		Task:    task.ID.String(),
		Project: project.ID.String(),
		Remarks: &remarks,
	})
	suite.Require().NoError(err)
	suite.False(submission.IsApproved)
	suite.Equal("done", *submission.Remarks)
	suite.Equal(worker.ID, *submission.CreatorID)
	suite.Equal(models.StatusDraft, suite.taskStatus(task.ID))
}

func (suite *ServiceTestSuite) TestCreateSubmission_Failures() {
	hr := suite.hr()
	project := suite.createProject(hr)
	task := suite.createTask(hr, project)

	tests := []struct {
		name    string
		input   CreateSubmissionInput
		kind    apierrors.Kind
		message string
	}{
		{"task required", CreateSubmissionInput{}, apierrors.KindValidation, msgTaskRequired},
		{"task uuid", CreateSubmissionInput{Task: "x", Project: "y"}, apierrors.KindValidation, msgTaskInvalid},
		{"task exists before project", CreateSubmissionInput{Task: uuid.NewString(), Project: "y"}, apierrors.KindNotFound, msgTaskNotFound},
		{"project uuid", CreateSubmissionInput{Task: task.ID.String(), Project: "y"}, apierrors.KindValidation, msgProjectInvalid},
		{"project exists", CreateSubmissionInput{Task: task.ID.String(), Project: uuid.NewString()}, apierrors.KindNotFound, msgProjectNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.submissions.CreateSubmission(hr, tt.input)
			suite.requireAPIError(err, tt.kind, tt.message)
		})
	}
}

func (suite *ServiceTestSuite) TestEditSubmission_ApprovalMovesTaskToOngoing() {
	hr := suite.hr()
	project := suite.createProject(hr)
	task := suite.createTask(hr, project)

	submission, err := suite.submissions.CreateSubmission(hr, CreateSubmissionInput{Task: task.ID.String(), Project: project.ID.String()})
	suite.Require().NoError(err)

	// Annotating without approving leaves the task alone.
	remarks := "almost"
	edited, err := suite.submissions.EditSubmission(hr, submission.ID.String(), EditSubmissionInput{RemarksSet: true, Remarks: &remarks})
	suite.Require().NoError(err)
	suite.Equal("almost", *edited.Remarks)
	suite.Equal(models.StatusDraft, suite.taskStatus(task.ID))

	approved := true
	edited, err = suite.submissions.EditSubmission(hr, submission.ID.String(), EditSubmissionInput{IsApproved: &approved})
	suite.Require().NoError(err)
	suite.True(edited.IsApproved)
	suite.Equal("almost", *edited.Remarks)
	suite.Equal(hr.ID, *edited.ModifierID)
	suite.Equal(models.StatusOngoing, suite.taskStatus(task.ID))
}

func (suite *ServiceTestSuite) TestEditSubmission_RolledBackApproval() {
	hr := suite.hr()
	project := suite.createProject(hr)
	task := suite.createTask(hr, project)

	submission, err := suite.submissions.CreateSubmission(hr, CreateSubmissionInput{Task: task.ID.String(), Project: project.ID.String()})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.db.Delete(&models.Task{}, "id = ?", task.ID).Error)

	approved := true
	_, err = suite.submissions.EditSubmission(hr, submission.ID.String(), EditSubmissionInput{IsApproved: &approved})
	suite.requireAPIError(err, apierrors.KindNotFound, msgApprovalTaskNotFound)

	var stored models.SubmittedTask
	suite.Require().NoError(suite.db.First(&stored, "id = ?", submission.ID).Error)
	suite.False(stored.IsApproved)
	suite.Nil(stored.ModifierID)
}

func (suite *ServiceTestSuite) TestEditSubmission_Failures() {
	hr := suite.hr()

	_, err := suite.submissions.EditSubmission(hr, "x", EditSubmissionInput{})
	suite.requireAPIError(err, apierrors.KindValidation, invalidUUIDMessage)

	_, err = suite.submissions.EditSubmission(hr, uuid.NewString(), EditSubmissionInput{})
	suite.requireAPIError(err, apierrors.KindNotFound, msgSubmissionNotFound)
}

func (suite *ServiceTestSuite) TestListSubmissions() {
	hr := suite.hr()
	project := suite.createProject(hr)
	task := suite.createTask(hr, project)

	first, err := suite.submissions.CreateSubmission(hr, CreateSubmissionInput{Task: task.ID.String(), Project: project.ID.String()})
	suite.Require().NoError(err)
	_, err = suite.submissions.CreateSubmission(hr, CreateSubmissionInput{Task: task.ID.String(), Project: project.ID.String()})
	suite.Require().NoError(err)

	approved := true
	_, err = suite.submissions.EditSubmission(hr, first.ID.String(), EditSubmissionInput{IsApproved: &approved})
	suite.Require().NoError(err)

	list, total, err := suite.submissions.ListSubmissions(ListSubmissionsInput{
		Task:       task.ID.String(),
		IsApproved: "false",
		Pagination: utils.NewPaginationParams(1, 10),
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.False(list[0].IsApproved)

	_, _, err = suite.submissions.ListSubmissions(ListSubmissionsInput{IsApproved: "maybe"})
	suite.requireAPIError(err, apierrors.KindValidation, msgIsApprovedInvalid)
}
