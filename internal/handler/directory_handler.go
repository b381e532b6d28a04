package handler

import (
	"errors"
	"net/http"

	"github.com/edusync/edusync-backend/internal/model"
	"github.com/edusync/edusync-backend/internal/repository"
	"github.com/edusync/edusync-backend/internal/response"
	"github.com/edusync/edusync-backend/internal/service"
	"github.com/edusync/edusync-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles admin-facing account provisioning and approval.
// All routes sit behind RequireAdmin; validation order inside each operation
// is payload presence, then department membership, then the store write.
type DirectoryHandler struct {
	directoryService *service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// CreateAdmin godoc
// POST /api/v1/admin/users/admins
// Provisions a department admin. Idempotent on email.
func (h *DirectoryHandler) CreateAdmin(c *gin.Context) {
	var req model.CreateAdminRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.directoryService.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		failProvisioning(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"success": true, "uid": user.ID})
}

// CreateFaculty godoc
// POST /api/v1/admin/users/faculty
// Provisions a faculty account with approved=false. Idempotent on email.
func (h *DirectoryHandler) CreateFaculty(c *gin.Context) {
	var req model.CreateFacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.directoryService.CreateFaculty(c.Request.Context(), &req)
	if err != nil {
		failProvisioning(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"success": true, "uid": user.ID})
}

// ApproveFaculty godoc
// POST /api/v1/admin/users/faculty/:uid/approve
// Approves a pending faculty account, reasserting role/department claims.
func (h *DirectoryHandler) ApproveFaculty(c *gin.Context) {
	uid := c.Param("uid")

	var req model.ApproveFacultyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.directoryService.ApproveFaculty(c.Request.Context(), uid, req.Department)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failProvisioning(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true, "uid": user.ID})
}

// ListFaculty godoc
// GET /api/v1/admin/users/faculty?department=CSE&pending=true
// Lists faculty profiles for review and approval.
func (h *DirectoryHandler) ListFaculty(c *gin.Context) {
	var department *model.Department
	if d := c.Query("department"); d != "" {
		dep := model.Department(d)
		department = &dep
	}
	pendingOnly := c.Query("pending") == "true"

	users, err := h.directoryService.ListFaculty(c.Request.Context(), department, pendingOnly)
	if err != nil {
		failProvisioning(c, err)
		return
	}

	views := make([]gin.H, 0, len(users))
	for i := range users {
		views = append(views, userView(&users[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"faculty": views})
}

// failProvisioning maps directory errors onto the response taxonomy. An
// invalid department surfaces the allowed set; anything else is opaque.
func failProvisioning(c *gin.Context, err error) {
	if errors.Is(err, model.ErrInvalidDepartment) {
		response.FailWithMessage(c, http.StatusBadRequest, response.ErrInvalidDepartment, err.Error())
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
