package handler

import (
	"errors"
	"net/http"

	"github.com/edusync/edusync-backend/internal/middleware"
	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/edusync/edusync-backend/internal/response"
	"github.com/edusync/edusync-backend/internal/service"
	"github.com/edusync/edusync-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService      *service.AuthService
	directoryService *service.DirectoryService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, directoryService *service.DirectoryService) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		directoryService: directoryService,
	}
}

// Login godoc
// POST /api/v1/auth/login
// Validates email + password, returns a JWT carrying role/department claims.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.directoryService.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		if errors.Is(err, service.ErrNotApproved) {
			response.Fail(c, http.StatusForbidden, response.ErrFacultyNotApproved)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  userView(user),
	})
}

// Signup godoc
// POST /api/v1/auth/signup
// Faculty self-registration. The account starts unapproved; the department
// HOD must approve it before login succeeds.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.directoryService.SignupFaculty(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidDepartment) {
			response.FailWithMessage(c, http.StatusBadRequest, response.ErrInvalidDepartment, err.Error())
			return
		}
		if errors.Is(err, service.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"success": true, "uid": user.ID})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile of the currently authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.directoryService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

// UpdateMe godoc
// PUT /api/v1/auth/me
// Edits the caller's own name and phone, returning the refreshed profile.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.directoryService.UpdateProfile(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

// userView shapes a profile for API responses, never exposing the hash.
func userView(u *model.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"phone":      u.Phone,
		"role":       u.Role,
		"department": u.Department,
		"erp_id":     u.ErpID,
		"approved":   u.Approved,
		"created_at": u.CreatedAt,
	}
}
