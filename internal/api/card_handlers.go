package api

import (
	"net/http"
	"strings"

	"go-kanban/internal/auth"
	"go-kanban/internal/card"
	"go-kanban/internal/db"

	"github.com/gin-gonic/gin"
)

// GET /kanban/cards
func ListCardsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var cards []card.Card
		if err := db.DB.Order("created_at DESC").Find(&cards).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "List error"})
			return
		}
		result := make([]gin.H, 0, len(cards))
		for _, k := range cards {
			result = append(result, cardJSON(k))
		}
		c.JSON(http.StatusOK, result)
	}
}

type CreateCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Column      string `json:"column"`
}

// POST /kanban/cards
// New work always enters the board at the first stage: the requested column
// is ignored and the card starts in todo.
func CreateCardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		var req CreateCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if strings.TrimSpace(req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title required"})
			return
		}
		newCard := card.Card{
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			Column:      card.ColumnTodo,
			CreatorID:   p.ID,
		}
		if err := db.DB.Create(&newCard).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Create error"})
			return
		}
		c.JSON(http.StatusCreated, cardJSON(newCard))
	}
}

type UpdateCardRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Column      *string `json:"column,omitempty"`
}

// PUT /kanban/cards/:id
func UpdateCardHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateCardRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Column != nil && !card.ValidColumn(card.Column(*req.Column)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column"})
			return
		}
		var k card.Card
		if err := db.DB.First(&k, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if req.Title != nil {
			k.Title = *req.Title
		}
		if req.Description != nil {
			k.Description = *req.Description
		}
		if req.Column != nil {
			k.Column = card.Column(*req.Column)
		}
		if err := db.DB.Save(&k).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update error"})
			return
		}
		c.JSON(http.StatusOK, cardJSON(k))
	}
}
