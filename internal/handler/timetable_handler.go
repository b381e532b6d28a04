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

// TimetableHandler handles the faculty weekly grid endpoints. All routes are
// scoped to the caller: the grid owner is always taken from the JWT claims.
type TimetableHandler struct {
	timetableService *service.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// Put godoc
// PUT /api/v1/faculty/timetable
func (h *TimetableHandler) Put(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.PutTimetableEntryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry, err := h.timetableService.Put(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"entry": entry})
}

// List godoc
// GET /api/v1/faculty/timetable
func (h *TimetableHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)

	entries, err := h.timetableService.List(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"entries": entries})
}

// Clear godoc
// DELETE /api/v1/faculty/timetable/:day/:slot
func (h *TimetableHandler) Clear(c *gin.Context) {
	claims := middleware.GetClaims(c)

	day := c.Param("day")
	valid := false
	for _, d := range model.TimetableDays {
		if d == day {
			valid = true
			break
		}
	}
	if !valid {
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		return
	}

	if err := h.timetableService.Clear(c.Request.Context(), claims.UserID, day, c.Param("slot")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
