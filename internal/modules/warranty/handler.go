package warranty

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/warranties", h.List)
	rg.POST("/warranties", h.Create)
	rg.GET("/warranties/active", h.ListActive)
	rg.GET("/warranties/expiring", h.ListExpiring)
	rg.GET("/warranties/:id", h.Get)
	rg.PATCH("/warranties/:id", h.Update)
	rg.POST("/warranties/:id/void", h.Void)
	rg.GET("/warranties/:id/claims", h.ListClaims)
	rg.POST("/warranties/:id/claims", h.RecordClaim)
}

func (h *Handler) List(c *gin.Context) {
	warranties, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list warranties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"warranties": warranties})
}

func (h *Handler) ListActive(c *gin.Context) {
	warranties, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list warranties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"warranties": warranties})
}

func (h *Handler) ListExpiring(c *gin.Context) {
	days := 7
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid days")
			return
		}
		days = n
	}

	warranties, err := h.service.ListExpiring(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list warranties")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"warranties": warranties})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Customer, phone, device type and a positive warranty_days are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create warranty")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"warranty": w})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	w, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load warranty")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"warranty": w})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req UpdateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update warranty")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"warranty": w})
}

func (h *Handler) Void(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	w, err := h.service.Void(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to void warranty")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"warranty": w})
}

func (h *Handler) ListClaims(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	claims, err := h.service.ListClaims(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list claims")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"claims": claims})
}

func (h *Handler) RecordClaim(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	claim, err := h.service.RecordClaim(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Issue description is required")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record claim")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"claim": claim})
}
