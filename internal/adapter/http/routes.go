package http

import (
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/handlers"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/middleware"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/app/token"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Boards    *handlers.BoardHandler
	Tasks     *handlers.TaskHandler
	Comments  *handlers.CommentHandler
	Dashboard *handlers.DashboardHandler
}

func RegisterRoutes(r *gin.Engine, tokens *token.Manager, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/registration", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(tokens))
	{
		authed.GET("/boards", h.Boards.ListBoards)
		authed.POST("/boards", h.Boards.CreateBoard)
		authed.GET("/boards/:id", h.Boards.GetBoard)
		authed.PATCH("/boards/:id", h.Boards.UpdateBoard)
		authed.DELETE("/boards/:id", h.Boards.DeleteBoard)
		authed.GET("/boards/:id/tasks", h.Tasks.ListBoardTasks)

		authed.POST("/tasks", h.Tasks.CreateTask)
		authed.GET("/tasks/assigned-to-me", h.Tasks.ListAssignedTasks)
		authed.GET("/tasks/reviewing", h.Tasks.ListReviewingTasks)
		authed.GET("/tasks/:id", h.Tasks.GetTask)
		authed.PATCH("/tasks/:id", h.Tasks.UpdateTask)
		authed.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		authed.GET("/tasks/:id/comments", h.Comments.ListComments)
		authed.POST("/tasks/:id/comments", h.Comments.CreateComment)
		authed.DELETE("/tasks/:id/comments/:commentId", h.Comments.DeleteComment)

		authed.GET("/dashboard", h.Dashboard.Stats)
	}
}
