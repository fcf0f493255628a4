package db

import (
	"log"

	"go-kanban/internal/card"
	"go-kanban/internal/config"
	"go-kanban/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&user.User{}, &card.Card{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated")

	return EnsureBootstrapAdmin(db, cfg.Bootstrap.AdminPassword)
}

// EnsureBootstrapAdmin creates the fixed admin account on first startup.
func EnsureBootstrapAdmin(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&user.User{}).Where("username = ?", user.BootstrapUsername).Count(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return nil
	}
	hash, err := user.HashPassword(password)
	if err != nil {
		return err
	}
	admin := user.User{
		Username:     user.BootstrapUsername,
		Name:         "Administrador",
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Admin user created -> username: %s", user.BootstrapUsername)
	return nil
}
