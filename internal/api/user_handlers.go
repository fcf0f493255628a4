package api

import (
	"net/http"
	"strings"

	"go-kanban/internal/db"
	"go-kanban/internal/user"

	"github.com/gin-gonic/gin"
)

// GET /users  [admin, supervisor]
func ListUsersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []user.User
		err := db.DB.
			Where("username <> ?", user.BootstrapUsername).
			Order("created_at DESC").
			Find(&users).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "List error"})
			return
		}
		result := make([]gin.H, 0, len(users))
		for _, u := range users {
			result = append(result, userJSON(u))
		}
		c.JSON(http.StatusOK, result)
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// POST /users  [admin]
func CreateUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		req.Name = strings.TrimSpace(req.Name)
		if req.Username == "" || req.Name == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username, name and password required"})
			return
		}
		role := user.Role(req.Role)
		if req.Role == "" {
			role = user.RoleUser
		}
		if !user.ValidRole(role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		var count int64
		if err := db.DB.Model(&user.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
			return
		}
		if count != 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
			return
		}
		pwHash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Password hash failed"})
			return
		}
		newUser := user.User{
			Username:     req.Username,
			Name:         req.Name,
			PasswordHash: pwHash,
			Role:         role,
			Active:       true,
		}
		if err := db.DB.Create(&newUser).Error; err != nil {
			// Unique index backstop for concurrent creation attempts
			if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "UNIQUE") {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Create error"})
			return
		}
		c.JSON(http.StatusCreated, userJSON(newUser))
	}
}

type UpdateUserRequest struct {
	Name *string `json:"name,omitempty"`
	Role *string `json:"role,omitempty"`
}

// PUT /users/:id  [admin]
func UpdateUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Role != nil && !user.ValidRole(user.Role(*req.Role)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
			return
		}
		var u user.User
		if err := db.DB.First(&u, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Role != nil {
			u.Role = user.Role(*req.Role)
		}
		if err := db.DB.Save(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update error"})
			return
		}
		c.JSON(http.StatusOK, userJSON(u))
	}
}

// PATCH /users/:id/disable and /users/:id/activate  [admin, supervisor]
func SetUserActiveHandler(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var u user.User
		if err := db.DB.First(&u, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		u.Active = active
		if err := db.DB.Save(&u).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update error"})
			return
		}
		c.JSON(http.StatusOK, userJSON(u))
	}
}
