package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/kayotadakota/cat-exhibition/database"
	"github.com/kayotadakota/cat-exhibition/services"
	"github.com/kayotadakota/cat-exhibition/utils"
	"github.com/kayotadakota/cat-exhibition/utils/response"

	"github.com/gin-gonic/gin"
)

// RegisterUser creates a new user account
// @Summary New user registration
// @Description Creates a new user. Each user has the list of owned cats.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /user/register [post]
func RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	_, err := services.RegisterUser(database.DB, req.Username, req.Password)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			response.Error(c, http.StatusBadRequest, ErrUsernameInUse)
		case errors.As(err, &validationErr):
			response.Error(c, http.StatusBadRequest, validationErr.Message)
		default:
			log.Printf("Failed to register user %q: %v", req.Username, err)
			response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
		}
		return
	}

	response.Message(c, http.StatusCreated, MsgUserRegistered)
}

// Login authenticates a user and issues a JWT
// @Summary User login
// @Description Checks the credentials and returns a Bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /user/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := services.AuthenticateUser(database.DB, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
			return
		}
		log.Printf("Failed to authenticate user %q: %v", req.Username, err)
		response.Error(c, http.StatusInternalServerError, ErrInvalidCredentials)
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Failed to generate token for user %s: %v", user.ID, err)
		response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}
