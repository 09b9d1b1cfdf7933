package handlers

import (
	"github.com/gin-gonic/gin"

	"pdv/internal/core/appctx"
	"pdv/internal/domain/stock"
	"pdv/internal/infrastructure/http/v1/dto"
	"pdv/pkg/metrics"
)

// MovementHandler provides stock journal endpoints.
type MovementHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewMovementHandler creates a movement handler.
func NewMovementHandler(base *BaseHandler, service *stock.Service) *MovementHandler {
	return &MovementHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires stock endpoints onto the group.
func (h *MovementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/movimentacoes", h.Create)
	rg.GET("/movimentacoes", h.List)
	rg.GET("/movimentacoes/:id", h.Get)
	rg.GET("/produtos/:id/movimentacoes", h.ListByProduct)
	rg.GET("/relatorios/baixo-estoque", h.LowStock)
	rg.GET("/relatorios/estoque-zerado", h.ZeroStock)
}

// Create records a stock movement.
// POST /api/estoque/movimentacoes
func (h *MovementHandler) Create(c *gin.Context) {
	var req dto.CreateMovementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	movement, err := req.ToEntity()
	if err != nil {
		h.Error(c, err)
		return
	}
	movement.ResponsibleUser = appctx.GetUser(c.Request.Context())

	if err := h.service.Record(c.Request.Context(), movement); err != nil {
		h.Error(c, err)
		return
	}
	metrics.StockMovements.WithLabelValues(string(movement.Type)).Inc()
	h.Created(c, movement.ID)
}

// Get retrieves one movement.
// GET /api/estoque/movimentacoes/:id
func (h *MovementHandler) Get(c *gin.Context) {
	movementID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	movement, err := h.service.GetByID(c.Request.Context(), movementID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, movement)
}

// List retrieves movements with filtering.
// GET /api/estoque/movimentacoes
func (h *MovementHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := stock.ListFilter{ListFilter: query.ToFilter()}
	filter.Type = stock.MovementType(c.Query("tipo"))
	if raw := c.Query("produtoId"); raw != "" {
		parsed, err := parseQueryID(raw)
		if err != nil {
			h.Error(c, err)
			return
		}
		filter.ProductID = &parsed
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}

// ListByProduct retrieves the full movement history of one product.
// GET /api/estoque/produtos/:id/movimentacoes
func (h *MovementHandler) ListByProduct(c *gin.Context) {
	productID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}

// LowStock returns products below their minimum stock threshold.
// GET /api/estoque/relatorios/baixo-estoque
func (h *MovementHandler) LowStock(c *gin.Context) {
	report, err := h.service.LowStockReport(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}

// ZeroStock returns products with exactly zero stock.
// GET /api/estoque/relatorios/estoque-zerado
func (h *MovementHandler) ZeroStock(c *gin.Context) {
	report, err := h.service.ZeroStockReport(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, report)
}
