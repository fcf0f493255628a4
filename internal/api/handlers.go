package api

import (
	"net/http"

	"go-kanban/internal/card"
	"go-kanban/internal/user"

	"github.com/gin-gonic/gin"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// userJSON is the canonical user projection; the password hash never leaves
// the server.
func userJSON(u user.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"username":  u.Username,
		"name":      u.Name,
		"role":      u.Role,
		"active":    u.Active,
		"createdAt": u.CreatedAt,
	}
}

func cardJSON(k card.Card) gin.H {
	col := k.Column
	// Pre-migration rows may carry an empty column
	if col == "" {
		col = card.ColumnTodo
	}
	return gin.H{
		"id":          k.ID,
		"title":       k.Title,
		"description": k.Description,
		"column":      col,
		"creatorId":   k.CreatorID,
		"createdAt":   k.CreatedAt,
	}
}
