package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairshop/internal/domain"
	"repairshop/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the storefront read surface: active products
// and published rates only.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListPublicProducts)
	rg.GET("/service-rates", h.ListPublicServiceRates)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.POST("/products", h.CreateProduct)
	rg.GET("/products/low-stock", h.ListLowStock)
	rg.GET("/products/:id", h.GetProduct)
	rg.PATCH("/products/:id", h.UpdateProduct)
	rg.DELETE("/products/:id", h.DeleteProduct)

	rg.GET("/service-rates", h.ListServiceRates)
	rg.POST("/service-rates", h.CreateServiceRate)
	rg.PATCH("/service-rates/:id", h.UpdateServiceRate)
	rg.DELETE("/service-rates/:id", h.DeleteServiceRate)

	rg.GET("/settings", h.Settings)
	rg.PUT("/settings/:key", h.SetSetting)
}

func (h *Handler) ListPublicProducts(c *gin.Context) {
	f := domain.ProductFilter{
		Category:     c.Query("category"),
		ActiveOnly:   true,
		FeaturedOnly: c.Query("featured") == "true",
	}
	h.listProducts(c, f)
}

func (h *Handler) ListProducts(c *gin.Context) {
	f := domain.ProductFilter{
		Category:     c.Query("category"),
		ActiveOnly:   c.Query("active") == "true",
		FeaturedOnly: c.Query("featured") == "true",
	}
	h.listProducts(c, f)
}

func (h *Handler) listProducts(c *gin.Context, f domain.ProductFilter) {
	products, err := h.service.ListProducts(c.Request.Context(), f)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown category")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list products")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and a known category are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create product")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": p})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	p, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load product")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": p})
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update product")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": p})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete product")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListLowStock(c *gin.Context) {
	threshold := 0
	if v := c.Query("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid threshold")
			return
		}
		threshold = n
	}

	products, err := h.service.ListLowStock(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list products")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handler) ListPublicServiceRates(c *gin.Context) {
	rates, err := h.service.ListServiceRates(c.Request.Context(), true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list service rates")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_rates": rates})
}

func (h *Handler) ListServiceRates(c *gin.Context) {
	rates, err := h.service.ListServiceRates(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list service rates")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service_rates": rates})
}

func (h *Handler) CreateServiceRate(c *gin.Context) {
	var req CreateServiceRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.CreateServiceRate(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Device type and service name are required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service rate")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"service_rate": r})
}

func (h *Handler) UpdateServiceRate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req UpdateServiceRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.UpdateServiceRate(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Nothing to update")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service rate not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update service rate")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"service_rate": r})
}

func (h *Handler) DeleteServiceRate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.DeleteServiceRate(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete service rate")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Settings(c *gin.Context) {
	settings, err := h.service.Settings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) SetSetting(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetSetting(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A key is required")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Unknown setting")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update setting")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}
