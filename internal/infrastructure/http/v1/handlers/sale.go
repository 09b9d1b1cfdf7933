package handlers

import (
	"github.com/gin-gonic/gin"

	"pdv/internal/app"
	"pdv/internal/domain/sale"
	"pdv/internal/infrastructure/http/v1/dto"
)

// SaleHandler provides sale document endpoints. Confirmation and
// cancellation go through the application flow, which owns the stock
// and ledger side effects.
type SaleHandler struct {
	*BaseHandler
	service *sale.Service
	flow    *app.SaleFlow
}

// NewSaleHandler creates a sale handler.
func NewSaleHandler(base *BaseHandler, service *sale.Service, flow *app.SaleFlow) *SaleHandler {
	return &SaleHandler{BaseHandler: base, service: service, flow: flow}
}

// RegisterRoutes wires sale endpoints onto the group.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("/:id/confirmar", h.Confirm)
	rg.POST("/:id/cancelar", h.Cancel)
	rg.POST("/:id/cupom", h.IssueCupom)
}

// Create opens a new pending sale.
// POST /api/vendas
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}

	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, doc.ID)
}

// Get retrieves one sale.
// GET /api/vendas/:id
func (h *SaleHandler) Get(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// Confirm applies a pending sale: stock exits, ledger income, status
// flip to completed.
// POST /api/vendas/:id/confirmar
func (h *SaleHandler) Confirm(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.flow.Confirm(c.Request.Context(), saleID, h.Username(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// Cancel flags the sale as cancelled.
// POST /api/vendas/:id/cancelar
func (h *SaleHandler) Cancel(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.flow.Cancel(c.Request.Context(), saleID, h.Username(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, doc)
}

// IssueCupom generates the cupom fiscal for a completed sale.
// POST /api/vendas/:id/cupom
func (h *SaleHandler) IssueCupom(c *gin.Context) {
	saleID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cupom, err := h.flow.IssueCupom(c.Request.Context(), saleID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cupom)
}

// List retrieves sales with filtering.
// GET /api/vendas
func (h *SaleHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := sale.ListFilter{ListFilter: query.ToFilter()}
	filter.Status = sale.Status(c.Query("status"))
	if raw := c.Query("clienteId"); raw != "" {
		parsed, err := parseQueryID(raw)
		if err != nil {
			h.Error(c, err)
			return
		}
		filter.CustomerID = &parsed
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}
