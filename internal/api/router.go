package api

import (
	"go-kanban/internal/auth"
	"go-kanban/internal/config"

	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	group := r.Group(cfg.Server.Subpath)
	{
		group.GET("/health", healthHandler)

		// Auth
		group.POST("/auth/login", LoginHandler(cfg))

		// Users
		authed := group.Group("", auth.AuthMiddleware(cfg))
		authed.GET("/users", auth.RequirePermission(auth.OpListUsers), ListUsersHandler())
		authed.POST("/users", auth.RequirePermission(auth.OpCreateUser), CreateUserHandler())
		authed.PUT("/users/:id", auth.RequirePermission(auth.OpUpdateUser), UpdateUserHandler())
		authed.PATCH("/users/:id/disable", auth.RequirePermission(auth.OpSetUserActive), SetUserActiveHandler(false))
		authed.PATCH("/users/:id/activate", auth.RequirePermission(auth.OpSetUserActive), SetUserActiveHandler(true))

		// Kanban cards
		authed.GET("/kanban/cards", auth.RequirePermission(auth.OpListCards), ListCardsHandler())
		authed.POST("/kanban/cards", auth.RequirePermission(auth.OpCreateCard), CreateCardHandler())
		authed.PUT("/kanban/cards/:id", auth.RequirePermission(auth.OpUpdateCard), UpdateCardHandler())
	}
	return r
}
