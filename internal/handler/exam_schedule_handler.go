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

// ExamScheduleHandler handles exam schedule document endpoints.
type ExamScheduleHandler struct {
	scheduleService *service.ExamScheduleService
}

// NewExamScheduleHandler creates a new ExamScheduleHandler.
func NewExamScheduleHandler(scheduleService *service.ExamScheduleService) *ExamScheduleHandler {
	return &ExamScheduleHandler{scheduleService: scheduleService}
}

// Create godoc
// POST /api/v1/admin/exam-schedules
func (h *ExamScheduleHandler) Create(c *gin.Context) {
	var req model.CreateExamScheduleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"schedule": schedule})
}

// List godoc
// GET /api/v1/exam-schedules?type=mids
func (h *ExamScheduleHandler) List(c *gin.Context) {
	var examType *model.ExamType
	if raw := c.Query("type"); raw != "" {
		t := model.ExamType(raw)
		switch t {
		case model.ExamTypeMids, model.ExamTypeLabInternals, model.ExamTypeSemester, model.ExamTypePlacements:
			examType = &t
		default:
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
			return
		}
	}

	schedules, err := h.scheduleService.List(c.Request.Context(), examType)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"schedules": schedules})
}

// Delete godoc
// DELETE /api/v1/admin/exam-schedules/:id
func (h *ExamScheduleHandler) Delete(c *gin.Context) {
	if err := h.scheduleService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
