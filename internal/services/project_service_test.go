package services

import (
	"github.com/google/uuid"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/utils"
)

func (suite *ServiceTestSuite) TestCreateProject_UnknownContributorIsSkipped() {
	hr := suite.hr()
	member := suite.createUser("member@example.com", "9841000010", models.RoleUser)
	ghost := uuid.New()

	project, err := suite.projects.CreateProject(hr, CreateProjectInput{
		Name:         "Website",
		Description:  "Company website rebuild",
		Contributors: []string{member.ID.String(), ghost.String(), member.ID.String()},
	})
	suite.Require().NoError(err)
	suite.Equal(models.StatusDraft, project.Status)
	suite.Equal(hr.ID, *project.CreatorID)
	suite.Equal([]uuid.UUID{member.ID}, project.ContributorIDs())

	// The same unknown id is rejected on edit.
	contributors := []string{ghost.String()}
	_, err = suite.projects.EditProject(hr, project.ID.String(), EditProjectInput{Contributors: &contributors})
	suite.requireAPIError(err, apierrors.KindNotFound, msgContributorDoesNotExist)
}

func (suite *ServiceTestSuite) TestCreateProject_Validation() {
	hr := suite.hr()

	tests := []struct {
		name    string
		input   CreateProjectInput
		message string
	}{
		{"name before description", CreateProjectInput{Name: " ", Description: ""}, msgNameRequired},
		{"description", CreateProjectInput{Name: "n"}, msgDescriptionRequired},
		{"status", CreateProjectInput{Name: "n", Description: "d", Status: "Archived"}, msgStatusInvalid},
		{"contributor", CreateProjectInput{Name: "n", Description: "d", Contributors: []string{"not-a-uuid"}}, msgContributorInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.projects.CreateProject(hr, tt.input)
			suite.requireAPIError(err, apierrors.KindValidation, tt.message)
		})
	}
}

func (suite *ServiceTestSuite) TestEditProject() {
	hr := suite.hr()
	first := suite.createUser("first@example.com", "9841000011", models.RoleUser)
	second := suite.createUser("second@example.com", "9841000012", models.RoleUser)

	project, err := suite.projects.CreateProject(hr, CreateProjectInput{
		Name:         "Website",
		Description:  "d",
		Contributors: []string{first.ID.String()},
	})
	suite.Require().NoError(err)

	name := "Website v2"
	status := string(models.StatusOngoing)
	contributors := []string{second.ID.String()}
	edited, err := suite.projects.EditProject(hr, project.ID.String(), EditProjectInput{
		Name:         &name,
		Status:       &status,
		Contributors: &contributors,
	})
	suite.Require().NoError(err)
	suite.Equal("Website v2", edited.Name)
	suite.Equal("d", edited.Description)
	suite.Equal(models.StatusOngoing, edited.Status)
	suite.Equal(hr.ID, *edited.ModifierID)
	suite.Equal([]uuid.UUID{second.ID}, edited.ContributorIDs())

	// Omitting contributors keeps the current set.
	description := "new description"
	edited, err = suite.projects.EditProject(hr, project.ID.String(), EditProjectInput{Description: &description})
	suite.Require().NoError(err)
	suite.Equal([]uuid.UUID{second.ID}, edited.ContributorIDs())
}

func (suite *ServiceTestSuite) TestEditProject_Failures() {
	hr := suite.hr()

	_, err := suite.projects.EditProject(hr, "42", EditProjectInput{})
	suite.requireAPIError(err, apierrors.KindValidation, invalidUUIDMessage)

	_, err = suite.projects.EditProject(hr, uuid.NewString(), EditProjectInput{})
	suite.requireAPIError(err, apierrors.KindNotFound, msgProjectNotFound)

	project, err := suite.projects.CreateProject(hr, CreateProjectInput{Name: "n", Description: "d"})
	suite.Require().NoError(err)

	empty := ""
	_, err = suite.projects.EditProject(hr, project.ID.String(), EditProjectInput{Name: &empty})
	suite.requireAPIError(err, apierrors.KindValidation, msgNameEmpty)

	bad := "Done"
	_, err = suite.projects.EditProject(hr, project.ID.String(), EditProjectInput{Status: &bad})
	suite.requireAPIError(err, apierrors.KindValidation, msgStatusInvalid)

	contributors := []string{"nope"}
	_, err = suite.projects.EditProject(hr, project.ID.String(), EditProjectInput{Contributors: &contributors})
	suite.requireAPIError(err, apierrors.KindValidation, msgContributorInvalid)
}

func (suite *ServiceTestSuite) TestListProjects() {
	hr := suite.hr()
	for _, status := range []string{"", "", string(models.StatusOngoing)} {
		_, err := suite.projects.CreateProject(hr, CreateProjectInput{Name: "n", Description: "d", Status: status})
		suite.Require().NoError(err)
	}

	projects, total, err := suite.projects.ListProjects(ListProjectsInput{
		Status:     string(models.StatusDraft),
		Pagination: utils.NewPaginationParams(1, 10),
	})
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(projects, 2)

	_, _, err = suite.projects.ListProjects(ListProjectsInput{Status: "draft"})
	suite.requireAPIError(err, apierrors.KindValidation, msgStatusInvalid)
}
