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

// LeaveHandler handles the leave request lifecycle endpoints.
type LeaveHandler struct {
	leaveService *service.LeaveService
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(leaveService *service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// Submit godoc
// POST /api/v1/faculty/leaves
// Creates a pending leave request and notifies the department's admins.
func (h *LeaveHandler) Submit(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.SubmitLeaveRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lr, err := h.leaveService.Submit(c.Request.Context(), claims, &req)
	if err != nil {
		if errors.Is(err, service.ErrDateRangeInverted) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDateRange)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"leave_request": lr})
}

// ListMine godoc
// GET /api/v1/faculty/leaves
// Lists the calling faculty member's requests, newest first.
func (h *LeaveHandler) ListMine(c *gin.Context) {
	claims := middleware.GetClaims(c)

	requests, err := h.leaveService.ListByRequester(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leave_requests": requests})
}

// ListByDepartment godoc
// GET /api/v1/admin/leaves
// Lists the calling admin's department requests, newest first.
func (h *LeaveHandler) ListByDepartment(c *gin.Context) {
	claims := middleware.GetClaims(c)

	requests, err := h.leaveService.ListByDepartment(c.Request.Context(), claims.Department)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leave_requests": requests})
}

// Decide godoc
// POST /api/v1/admin/leaves/:id/decide
// Approves or rejects a pending request in the admin's own department.
func (h *LeaveHandler) Decide(c *gin.Context) {
	claims := middleware.GetClaims(c)
	requestID := c.Param("id")

	var req model.DecideLeaveRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	lr, err := h.leaveService.Decide(c.Request.Context(), claims, requestID, req.Decision)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrWrongDepartment):
			response.Fail(c, http.StatusForbidden, response.ErrWrongDepartment)
		case errors.Is(err, service.ErrAlreadyDecided):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyDecided)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"leave_request": lr})
}
