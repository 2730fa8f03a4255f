package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-assigner/internal/auth"
	"github.com/yukikurage/task-assigner/internal/constants"
	"github.com/yukikurage/task-assigner/internal/handlers"
	"github.com/yukikurage/task-assigner/internal/middleware"
	"github.com/yukikurage/task-assigner/internal/policy"
	"github.com/yukikurage/task-assigner/internal/repository"
)

// Options carries what the router needs besides the handlers.
type Options struct {
	Store          sessions.Store
	Users          repository.UserRepository
	Tokens         *auth.Issuer
	AllowedOrigins []string
}

// Handlers groups the HTTP handlers mounted under /api/v1.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Projects    *handlers.ProjectHandler
	Tasks       *handlers.TaskHandler
	Submissions *handlers.SubmissionHandler
}

// New builds the gin engine with every route gated by its policy operation.
func New(opts Options, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(sessions.Sessions(constants.SessionCookieName, opts.Store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Assigner API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.Authenticate(opts.Users, opts.Tokens))
	{
		api.POST("/account-registration/", middleware.Authorize(policy.OpRegister), h.Auth.Register)
		api.POST("/login/", middleware.Authorize(policy.OpLogin), h.Auth.Login)
		api.POST("/token-refresh/", middleware.Authorize(policy.OpRefreshToken), h.Auth.Refresh)
		api.POST("/logout/", middleware.Authorize(policy.OpLogout), h.Auth.Logout)
		api.GET("/me/", middleware.Authorize(policy.OpViewProfile), h.Auth.Me)

		api.POST("/project-create/", middleware.Authorize(policy.OpCreateProject), h.Projects.CreateProject)
		api.GET("/project-list/", middleware.Authorize(policy.OpListProjects), h.Projects.ListProjects)
		api.PATCH("/project-edit/:id/", middleware.Authorize(policy.OpEditProject), h.Projects.EditProject)

		api.POST("/task-create/", middleware.Authorize(policy.OpCreateTask), h.Tasks.CreateTask)
		api.PATCH("/task-edit/:id/", middleware.Authorize(policy.OpEditTask), h.Tasks.EditTask)
		api.GET("/task-list/", middleware.Authorize(policy.OpListTasks), h.Tasks.ListTasks)
		api.POST("/task-generate/", middleware.Authorize(policy.OpGenerateTasks), h.Tasks.GenerateTasks)

		api.POST("/task-submitting-create/", middleware.Authorize(policy.OpCreateSubmission), h.Submissions.CreateSubmission)
		api.PATCH("/task-submitted-edit/:id/", middleware.Authorize(policy.OpEditSubmission), h.Submissions.EditSubmission)
		api.GET("/task-submitted-list/", middleware.Authorize(policy.OpListSubmissions), h.Submissions.ListSubmissions)
	}

	return r
}
