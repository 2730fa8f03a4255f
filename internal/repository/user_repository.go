package repository

import (
	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return classifyDuplicate(r.db, r.db.Create(user).Error)
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByPhone finds a user by phone number
func (r *GormUserRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByPhone reports whether a user already holds the phone number
func (r *GormUserRepository) ExistsByPhone(phone string) (bool, error) {
	return r.exists("phone = ?", phone)
}

// ExistsByEmail reports whether a user already holds the email
func (r *GormUserRepository) ExistsByEmail(email string) (bool, error) {
	return r.exists("email = ?", email)
}

// ExistsBySlug reports whether a user already holds the slug
func (r *GormUserRepository) ExistsBySlug(slug string) (bool, error) {
	return r.exists("slug = ?", slug)
}

func (r *GormUserRepository) exists(query string, args ...interface{}) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistingIDs returns the subset of ids that belong to stored users
func (r *GormUserRepository) ExistingIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return []uuid.UUID{}, nil
	}

	var found []uuid.UUID
	if err := r.db.Model(&models.User{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	return found, nil
}
