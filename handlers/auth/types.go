package auth

// Constants for error messages
const (
	ErrInvalidCredentials  = "Invalid credentials"
	ErrUsernameInUse       = "Username already in use"
	ErrUserCreateFailed    = "Failed to create user"
	ErrTokenGenerateFailed = "Failed to generate token"

	MsgUserRegistered = "User registered successfully."
)

// RegisterRequest model for registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest model for the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse model for successful logins
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
