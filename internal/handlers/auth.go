package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/constants"
	"github.com/yukikurage/task-assigner/internal/dto"
	apierrors "github.com/yukikurage/task-assigner/internal/errors"
	"github.com/yukikurage/task-assigner/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a USER account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		FullName    string `json:"full_name"`
		Phone       string `json:"phone"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		Gender      string `json:"gender"`
		DateOfBirth string `json:"date_of_birth"`
		ProfilePic  string `json:"profile_pic"`
	}

	var req RegisterRequest
	if !bindJSON(c, services.TitleAccounts, &req) {
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		Password:    req.Password,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		ProfilePic:  req.ProfilePic,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleAccounts, "Accounts created successfully", dto.ToUserDTO(*user))
}

// Login authenticates a user, issues a token pair and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if !bindJSON(c, services.TitleLogin, &req) {
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, result.User.ID.String())
	if err := session.Save(); err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleLogin, "Logged in successfully", dto.LoginDTO{
		UserDTO: dto.ToUserDTO(*result.User),
		Access:  result.Tokens.Access,
		Refresh: result.Tokens.Refresh,
	})
}

// Refresh exchanges a refresh token for a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	type RefreshRequest struct {
		Refresh string `json:"refresh"`
	}

	var req RefreshRequest
	if !bindJSON(c, services.TitleToken, &req) {
		return
	}

	access, err := h.authService.Refresh(req.Refresh)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, services.TitleToken, "Token refreshed successfully", dto.AccessDTO{Access: access})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.Respond(c, err)
		return
	}

	respondOK(c, "Logout", "Logged out successfully", nil)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	respondOK(c, services.TitleAccounts, "Account fetched successfully", dto.ToUserDTO(*user))
}
