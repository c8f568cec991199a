package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kayotadakota/cat-exhibition/models"
	"github.com/kayotadakota/cat-exhibition/utils"

	"gorm.io/gorm"
)

// RegisterUser creates a new account. The unique constraint on usernames is
// the authority on duplicates; a violation becomes ErrUsernameTaken.
func RegisterUser(db *gorm.DB, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, &ValidationError{Field: "username", Message: "username must not be empty"}
	}
	if password == "" {
		return models.User{}, &ValidationError{Field: "password", Message: "password must not be empty"}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{Username: username, Password: hashed}
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// AuthenticateUser checks the credentials and returns the matching user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func AuthenticateUser(db *gorm.DB, username, password string) (models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// ListUsers returns every user with their owned cats preloaded
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Preload("Ownership").Preload("Ownership.Breed").Preload("Ownership.Owner").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
