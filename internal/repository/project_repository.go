package repository

import (
	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/database"
	"github.com/yukikurage/task-assigner/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a project and links the given contributors in one transaction
func (r *GormProjectRepository) Create(project *models.Project, contributorIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}

		contributors, err := linkContributors(tx, project.ID, contributorIDs)
		if err != nil {
			return err
		}
		project.Contributors = contributors
		return nil
	})
}

// FindByID finds a project by ID with its contributors
func (r *GormProjectRepository) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Contributors").Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project with the ID exists
func (r *GormProjectRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update saves the project columns and optionally replaces the contributor set
func (r *GormProjectRepository) Update(project *models.Project, contributorIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return err
		}

		if contributorIDs == nil {
			return nil
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectContributor{}).Error; err != nil {
			return err
		}

		contributors, err := linkContributors(tx, project.ID, contributorIDs)
		if err != nil {
			return err
		}
		project.Contributors = contributors
		return nil
	})
}

// List retrieves projects with filtering and pagination
func (r *GormProjectRepository) List(filter ProjectFilter) ([]models.Project, int64, error) {
	query := r.db.Model(&models.Project{})

	if filter.Status != nil {
		query = query.Where("projects.status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := query.
		Scopes(database.NewestFirst("created_at"), database.Paginate(filter.Pagination)).
		Preload("Contributors").
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// linkContributors inserts one join row per distinct id. Callers filter ids
// down to stored users first.
func linkContributors(tx *gorm.DB, projectID uuid.UUID, userIDs []uuid.UUID) ([]models.ProjectContributor, error) {
	seen := make(map[uuid.UUID]struct{}, len(userIDs))
	rows := make([]models.ProjectContributor, 0, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, models.ProjectContributor{ProjectID: projectID, UserID: id})
	}

	if len(rows) == 0 {
		return rows, nil
	}

	if err := tx.Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
