package api

import (
	"strings"
	"testing"
	"time"

	"go-kanban/internal/auth"
	"go-kanban/internal/card"
	"go-kanban/internal/db"
	"go-kanban/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbConn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := dbConn.AutoMigrate(&user.User{}, &card.Card{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = dbConn
	return dbConn
}

func resetTables(t *testing.T) {
	if err := db.DB.Exec("DELETE FROM users").Error; err != nil {
		t.Fatalf("failed to reset users table: %v", err)
	}
	if err := db.DB.Exec("DELETE FROM cards").Error; err != nil {
		t.Fatalf("failed to reset cards table: %v", err)
	}
}

func seedUser(t *testing.T, username string, role user.Role, active bool) user.User {
	hash, err := user.HashPassword("pw123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	u := user.User{Username: username, Name: username, PasswordHash: hash, Role: role, Active: active, CreatedAt: time.Now()}
	if err := db.DB.Create(&u).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return u
}

func seedCard(t *testing.T, title string, col card.Column, creatorId string) card.Card {
	k := card.Card{Title: title, Column: col, CreatorID: creatorId, CreatedAt: time.Now()}
	if err := db.DB.Create(&k).Error; err != nil {
		t.Fatalf("failed to seed card: %v", err)
	}
	return k
}

// Simulate the session middleware for a resolved principal
func withPrincipal(u user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal", auth.Principal{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Role:     u.Role,
			Active:   u.Active,
		})
		c.Next()
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
