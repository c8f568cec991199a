package users

import "github.com/kayotadakota/cat-exhibition/handlers/cats"

// Constants for error messages
const (
	ErrFailedToGetUsers = "Failed to fetch users"
)

// UserResponse is the public representation of a user and the cats they own
type UserResponse struct {
	ID        string             `json:"id"`
	Username  string             `json:"username"`
	Ownership []cats.CatResponse `json:"ownership"`
}
