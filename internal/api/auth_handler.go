package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fithub/backend/internal/domain"
	"fithub/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

// SignInRequest carries the stub credential pair. Empty values are answered
// with a structured failure, not a binding error, so no binding tags here.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignUpRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Phone       string `json:"phone"`
	AccountType string `json:"account_type"`
}

// UserResponse excludes the credential fields and the store's row id.
type UserResponse struct {
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	AccountType string    `json:"account_type,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// MapUserToResponse converts a domain User to a UserResponse DTO. The
// password digest, salt and Mongo _id never leave this layer.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		UserID:      user.UserID,
		FullName:    user.FullName,
		Email:       user.Email,
		Phone:       user.Phone,
		AccountType: user.AccountType,
		Status:      user.Status,
		CreatedAt:   user.CreatedAt,
	}
}

// --- Handler Methods ---

// SignIn checks the fixed credential pair and returns a token pair on
// match. Bad credentials are a structured {status:false} body, still 200.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result := h.authService.SignIn(c.Request.Context(), req.Username, req.Password)
	if !result.Status {
		c.JSON(http.StatusOK, gin.H{"status": false, "message": result.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        true,
		"message":       result.Message,
		"token":         result.Token,
		"refresh_token": result.RefreshToken,
	})
}

// SignUp registers a new user and returns the generated id plus a token
// pair. A duplicate email is always a 400 conflict, whichever layer
// detected it.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.authService.SignUp(c.Request.Context(), service.SignUpInput{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		AccountType: req.AccountType,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) || errors.Is(err, service.ErrMissingFields) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        true,
		"message":       "User created successfully",
		"user_id":       result.UserID,
		"token":         result.Token,
		"refresh_token": result.RefreshToken,
	})
}

// GetAllUsers lists every account with credentials stripped.
func (h *AuthHandler) GetAllUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = MapUserToResponse(&u)
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "users": responses})
}
