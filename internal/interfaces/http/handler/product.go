package handler

import (
	"net/http"

	appcatalog "github.com/Mutombwa/kimberly-signature-scents/internal/application/catalog"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/dto"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves the public catalogue and the admin product CRUD
type ProductHandler struct {
	products *appcatalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(products *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"products": products})
}

// Create handles POST /api/products (admin only)
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), middleware.UserID(c), appcatalog.ProductCommand{
		Name:        req.Name,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Product created successfully", gin.H{"product": product})
}

// Delete handles DELETE /api/products/:id (admin only)
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Product deleted successfully", nil)
}
