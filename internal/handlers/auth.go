package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/atul-mandavkar/inotebook-backend/internal/auth"
	"github.com/atul-mandavkar/inotebook-backend/internal/dto"
	"github.com/atul-mandavkar/inotebook-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles register, login and the current-user lookup.
type AuthHandler struct {
	tokens  *auth.TokenService
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.TokenService, userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{tokens: tokens, userSvc: userSvc}
}

// Register godoc
// @Summary      Create a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Name, email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/createUser [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}
	user, err := h.userSvc.Register(c.Request.Context(), string(req.Name), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already exists"})
			return
		}
		log.Printf("register: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}
	user, err := h.userSvc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email or password not correct"})
			return
		}
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Printf("issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}

// GetUser godoc
// @Summary      Get the current user
// @Tags         auth
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /auth/getUser [post]
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	user, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		// A verified token pointing at a missing user is an inconsistency,
		// not a caller error.
		log.Printf("get user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "some internal error occurred"})
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
