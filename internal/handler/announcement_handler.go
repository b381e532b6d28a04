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

// AnnouncementHandler handles college-wide announcements.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// Create godoc
// POST /api/v1/admin/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)

	var req model.CreateAnnouncementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	a, err := h.announcementService.Create(c.Request.Context(), claims.Name, &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"announcement": a})
}

// List godoc
// GET /api/v1/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcementService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"announcements": announcements})
}

// Delete godoc
// DELETE /api/v1/admin/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.announcementService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
