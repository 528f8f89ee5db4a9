package dashboard

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
	rg.GET("/dashboard/stats", h.Stats)
	rg.GET("/dashboard/popular-devices", h.PopularDevices)
	rg.GET("/dashboard/recent-bookings", h.RecentBookings)
	rg.GET("/dashboard/low-stock", h.LowStock)
}

func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.BookingStats(c.Request.Context(), intQuery(c, "days"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats")
		return
	}

	today, err := h.service.TodayIntakeCount(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"stats":              stats,
		"today_intake_count": today,
	})
}

func (h *Handler) PopularDevices(c *gin.Context) {
	devices, err := h.service.PopularDevices(c.Request.Context(), intQuery(c, "limit"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load popular devices")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"popular_devices": devices})
}

func (h *Handler) RecentBookings(c *gin.Context) {
	bookings, err := h.service.RecentBookings(c.Request.Context(), intQuery(c, "limit"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load recent bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"recent_bookings": bookings})
}

func (h *Handler) LowStock(c *gin.Context) {
	products, err := h.service.LowStock(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load low-stock products")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}
