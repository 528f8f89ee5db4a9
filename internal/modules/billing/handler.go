package billing

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
	rg.GET("/invoices", h.List)
	rg.POST("/invoices", h.Create)
	rg.GET("/invoices/next-number", h.NextNumber)
	rg.GET("/invoices/by-number/:number", h.GetByNumber)
	rg.GET("/invoices/:id", h.Get)
	rg.PATCH("/invoices/:id", h.Update)
	rg.DELETE("/invoices/:id", h.Delete)
	rg.POST("/invoices/:id/payments", h.RecordPayment)
	rg.GET("/invoices/:id/document", h.Document)
}

func (h *Handler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list invoices")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoices": invoices})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Customer name, phone and at least one line item are required")
		case ErrDuplicateNumber:
			response.Error(c, http.StatusConflict, "DUPLICATE_NUMBER", "Invoice number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create invoice")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"invoice": inv})
}

func (h *Handler) NextNumber(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"invoice_number": h.service.NextNumber(c.Request.Context())})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	inv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load invoice")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) GetByNumber(c *gin.Context) {
	inv, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load invoice")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field value")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update invoice")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
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
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete invoice")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	inv, err := h.service.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Payment amount must be positive")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) Document(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	inv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Invoice not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load invoice")
		}
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(Document(inv, h.shop)))
}
