package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/task-assigner/internal/auth"
	"github.com/yukikurage/task-assigner/internal/constants"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/models"
	"github.com/yukikurage/task-assigner/internal/repository"
	"github.com/yukikurage/task-assigner/internal/utils"
	"github.com/yukikurage/task-assigner/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrSlugExhausted        = errors.New("could not allocate a unique slug")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// Registration and login messages.
const (
	msgFullNameRequired = "FullName is required fields!"
	msgPasswordRequired = "Password is required fields!"
	msgPasswordWeak     = "Password must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one digit, and one special character!"
	msgProfilePic       = "Valid profile picture is required!"
	msgPhoneRequired    = "Phone is required field!"
	msgEmailRequired    = "Email is required field!"
	msgPhoneInvalid     = "Invalid phone number!"
	msgEmailInvalid     = "Invalid email!"
	msgPhoneTaken       = "Phone number already linked with another user!"
	msgEmailTaken       = "Email already linked with another user!"
	msgGenderInvalid    = "Invalid gender!"
	msgDateOfBirth      = "Invalid date of birth, expected YYYY-MM-DD!"

	msgIdentifierRequired = "Email or phone is required!"
	msgLoginPassword      = "Password is required!"
	msgUserNotFound       = "User not found!"
	msgIncorrectPassword  = "Incorrect password!"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	tokens     *auth.Issuer
	hashCost   int
	slugSource func(name string, attempt int) (string, error)
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.Issuer) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		hashCost:   bcrypt.DefaultCost,
		slugSource: utils.GenerateSlug,
	}
}

// RegisterInput represents the information needed to create an account.
type RegisterInput struct {
	FullName    string
	Phone       string
	Email       string
	Password    string
	Gender      string
	DateOfBirth string
	ProfilePic  string
}

// LoginInput holds the credentials for authentication. Email wins when both
// identifiers are present.
type LoginInput struct {
	Email    string
	Phone    string
	Password string
}

// LoginResult is the authenticated user and a fresh token pair.
type LoginResult struct {
	User   *models.User
	Tokens auth.TokenPair
}

// Register validates input in a fixed order, stopping at the first failure, and
// creates a USER account.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	phone := strings.TrimSpace(input.Phone)
	email := strings.TrimSpace(input.Email)

	if fe := validation.First(
		validation.Required("full_name", input.FullName, msgFullNameRequired),
		validation.NotEmpty("password", input.Password, msgPasswordRequired),
		validation.Check("password", input.Password, validation.ValidatePassword, msgPasswordWeak),
		validation.Optional("profile_pic", input.ProfilePic, validation.ValidateURL, msgProfilePic),
		validation.Required("phone", phone, msgPhoneRequired),
		validation.Required("email", email, msgEmailRequired),
		validation.Check("phone", phone, validation.ValidatePhone, msgPhoneInvalid),
		validation.Check("email", email, validation.ValidateEmail, msgEmailInvalid),
	); fe != nil {
		return nil, invalid(TitleAccounts, fe)
	}

	taken, err := s.userRepo.ExistsByPhone(phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if taken {
		return nil, apierrors.Conflict(TitleAccounts, msgPhoneTaken).WithField("phone")
	}

	taken, err = s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, apierrors.Conflict(TitleAccounts, msgEmailTaken).WithField("email")
	}

	gender := models.Gender(strings.ToUpper(strings.TrimSpace(input.Gender)))
	if fe := validation.First(
		validation.Rule{Field: "gender", Valid: func() bool { return gender == "" || gender.IsValid() }, Message: msgGenderInvalid},
		validation.Optional("date_of_birth", input.DateOfBirth, validDate, msgDateOfBirth),
	); fe != nil {
		return nil, invalid(TitleAccounts, fe)
	}
	if gender == "" {
		gender = models.GenderMale
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		FullName:     strings.TrimSpace(input.FullName),
		Phone:        strPtr(phone),
		Email:        strPtr(email),
		Gender:       gender,
		Role:         models.RoleUser,
		IsActive:     true,
		PasswordHash: string(hash),
	}
	if input.DateOfBirth != "" {
		dob, _ := time.Parse(constants.DateOfBirthLayout, input.DateOfBirth)
		date := datatypes.Date(dob)
		user.DateOfBirth = &date
	}
	if input.ProfilePic != "" {
		user.ProfilePic = strPtr(input.ProfilePic)
	}

	if err := s.createWithUniqueSlug(user); err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID, "slug", user.Slug)
	return user, nil
}

// createWithUniqueSlug persists user under the bare slugified name, drawing a
// random suffix only once that candidate is taken. Unique violations on phone or email that slipped past the
// pre-checks surface as the same conflicts.
func (s *AuthService) createWithUniqueSlug(user *models.User) error {
	for attempt := 0; attempt < constants.MaxSlugAttempts; attempt++ {
		slug, err := s.slugSource(user.FullName, attempt)
		if err != nil {
			return err
		}

		taken, err := s.userRepo.ExistsBySlug(slug)
		if err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			continue
		}

		user.ID = uuid.Nil
		user.Slug = slug
		err = s.userRepo.Create(user)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrDuplicateSlug):
			slog.Warn("slug collided at commit, retrying", "slug", slug)
			continue
		case errors.Is(err, repository.ErrDuplicatePhone):
			return apierrors.Conflict(TitleAccounts, msgPhoneTaken).WithField("phone")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return apierrors.Conflict(TitleAccounts, msgEmailTaken).WithField("email")
		default:
			return fmt.Errorf("failed to create user: %w", err)
		}
	}

	return ErrSlugExhausted
}

func validDate(value string) bool {
	_, err := time.Parse(constants.DateOfBirthLayout, value)
	return err == nil
}

// Login verifies credentials and the account state and issues a token pair.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	if email == "" && phone == "" {
		return nil, apierrors.Validation(TitleLogin, msgIdentifierRequired).WithField("email")
	}
	if input.Password == "" {
		return nil, apierrors.Validation(TitleLogin, msgLoginPassword).WithField("password")
	}

	var (
		user *models.User
		err  error
	)
	if email != "" {
		user, err = s.userRepo.FindByEmail(email)
	} else {
		user, err = s.userRepo.FindByPhone(phone)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NotFound(TitleLogin, msgUserNotFound)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apierrors.Validation(TitleLogin, msgIncorrectPassword).WithField("password")
	}

	if err := checkAccountState(user); err != nil {
		return nil, err
	}

	tokens, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID)
	return &LoginResult{User: user, Tokens: tokens}, nil
}

// Refresh exchanges a refresh token for a new access token. The account must still
// be active and unblocked.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", apierrors.Validation(TitleToken, "Refresh token is required!").WithField("refresh")
	}

	userID, _, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", apierrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierrors.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := checkAccountState(user); err != nil {
		return "", err
	}

	access, err := s.tokens.IssueAccess(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}
	return access, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, lookupErr(err, TitleAccounts, "id", msgUserNotFound, "user")
	}
	return user, nil
}

// checkAccountState reports blocked before inactive.
func checkAccountState(user *models.User) error {
	if user.IsBlocked {
		return apierrors.ErrAccountBlocked
	}
	if !user.IsActive {
		return apierrors.ErrAccountInactive
	}
	return nil
}
