package handlers

import (
	"github.com/gin-gonic/gin"

	"pdv/internal/domain/catalog"
	"pdv/internal/infrastructure/http/v1/dto"
)

// ProductHandler provides catalog product endpoints.
type ProductHandler struct {
	*BaseHandler
	service *catalog.Service
}

// NewProductHandler creates a product handler.
func NewProductHandler(base *BaseHandler, service *catalog.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires product endpoints onto the group.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Remove)
}

// Create registers a new product.
// POST /api/produtos
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), product); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, product.ID)
}

// Get retrieves one product.
// GET /api/produtos/:id
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetByID(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, product)
}

// Update applies a partial update.
// PUT /api/produtos/:id
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.service.Update(c.Request.Context(), productID, req.ToFields())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, product)
}

// Remove deactivates a product.
// DELETE /api/produtos/:id
func (h *ProductHandler) Remove(c *gin.Context) {
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), productID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// List retrieves products with filtering.
// GET /api/produtos
func (h *ProductHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := catalog.ListFilter{ListFilter: query.ToFilter()}
	filter.Category = c.Query("categoria")

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}
