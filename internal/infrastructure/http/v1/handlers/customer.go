package handlers

import (
	"github.com/gin-gonic/gin"

	"pdv/internal/domain/customer"
	"pdv/internal/infrastructure/http/v1/dto"
)

// CustomerHandler provides customer registry endpoints.
type CustomerHandler struct {
	*BaseHandler
	service *customer.Service
}

// NewCustomerHandler creates a customer handler.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHandler {
	return &CustomerHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires customer endpoints onto the group.
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Remove)
}

// Create registers a new customer.
// POST /api/clientes
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), entity); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, entity.ID)
}

// Get retrieves one customer.
// GET /api/clientes/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entity)
}

// Update applies a partial update.
// PUT /api/clientes/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCustomerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.service.Update(c.Request.Context(), customerID, req.ToFields())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entity)
}

// Remove deactivates a customer.
// DELETE /api/clientes/:id
func (h *CustomerHandler) Remove(c *gin.Context) {
	customerID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), customerID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// List retrieves customers with filtering.
// GET /api/clientes
func (h *CustomerHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	result, err := h.service.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}
