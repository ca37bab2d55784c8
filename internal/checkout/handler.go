package checkout

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-roast/internal/shared/apperr"
	"resume-roast/internal/shared/server/respond"
)

type createRequest struct {
	ProductType string `json:"productType" binding:"required"`
}

type createResponse struct {
	URL string `json:"url"`
}

// Handler wires HTTP handlers to the checkout service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches checkout routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Create)
	rg.GET("/products", h.List)
}

// Create handles POST /checkout.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_product", "Invalid product type", nil)
		return
	}

	redirect, err := h.Svc.CreateSession(c.Request.Context(), strings.TrimSpace(req.ProductType), c.GetHeader("Origin"))
	if err != nil {
		message := "Failed to create checkout session"
		if errors.Is(err, apperr.ErrInvalidProduct) {
			message = "Invalid product type"
		}
		respond.Fail(c, err, message)
		return
	}
	respond.JSON(c, http.StatusOK, createResponse{URL: redirect})
}

// List handles GET /products.
func (h *Handler) List(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{"products": Products()})
}
