package customer

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
	rg.GET("/customers", h.List)
	rg.POST("/customers", h.Create)
	rg.GET("/customers/by-phone/:phone", h.FindByPhone)
	rg.GET("/customers/:id", h.Get)
	rg.PATCH("/customers/:id", h.Update)
	rg.DELETE("/customers/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list customers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customers": customers})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cust, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and phone are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create customer")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"customer": cust})
}

func (h *Handler) FindByPhone(c *gin.Context) {
	cust, err := h.service.FindByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to look up customer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	cust, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load customer")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cust, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update customer")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"customer": cust})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Customer not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete customer")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
