package track

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"repairshop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public lookup; no auth, customers hit it
// straight from the tracking page.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/track", h.Lookup)
}

func (h *Handler) Lookup(c *gin.Context) {
	mode := c.DefaultQuery("mode", ModeSerial)

	result, err := h.service.Lookup(c.Request.Context(), mode, c.Query("q"))
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A query and a mode of serial or phone are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Lookup failed")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
