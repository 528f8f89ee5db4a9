package contact

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairshop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/contacts", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/contacts", h.List)
	rg.POST("/contacts/mark-all-read", h.MarkAllRead)
	rg.POST("/contacts/:id/read", h.MarkRead)
	rg.DELETE("/contacts/:id", h.Delete)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, a valid email and a message are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit message")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"contact": msg})
}

func (h *Handler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Filter must be all, read or unread")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list messages")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contacts": contacts})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Message not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark message read")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	marked, err := h.service.MarkAllRead(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to mark messages read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"marked": marked})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete message")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
