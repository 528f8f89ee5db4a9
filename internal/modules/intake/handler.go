package intake

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairshop/internal/pkg/response"
)

type Handler struct {
	service *Service
	shop    ShopInfo
}

func NewHandler(service *Service, shop ShopInfo) *Handler {
	return &Handler{service: service, shop: shop}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/device-entries", h.List)
	rg.POST("/device-entries", h.Create)
	rg.GET("/device-entries/next-serial", h.NextSerial)
	rg.GET("/device-entries/today-count", h.TodayCount)
	rg.GET("/device-entries/:id", h.Get)
	rg.PATCH("/device-entries/:id", h.Update)
	rg.DELETE("/device-entries/:id", h.Delete)
	rg.GET("/device-entries/:id/receipt", h.Receipt)
}

func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list device entries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"device_entries": entries})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDeviceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Customer name, mobile number, device type and problem description are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register device")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"device_entry": e})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Device entry not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load device entry")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"device_entry": e})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req UpdateDeviceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Device entry not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update device entry")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"device_entry": e})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete device entry")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) NextSerial(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"serial_number": h.service.NextSerial(c.Request.Context())})
}

func (h *Handler) TodayCount(c *gin.Context) {
	n, err := h.service.TodayCount(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to count entries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": n})
}

// Receipt returns the printable receipt document as HTML.
func (h *Handler) Receipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Device entry not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load device entry")
		}
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(Receipt(e, h.shop)))
}
