package handlers

import (
	"github.com/gin-gonic/gin"

	"pdv/internal/domain/fiscal"
	"pdv/internal/infrastructure/http/v1/dto"
	"pdv/pkg/metrics"
)

// CupomHandler provides cupom fiscal endpoints.
type CupomHandler struct {
	*BaseHandler
	service *fiscal.Service
}

// NewCupomHandler creates a cupom handler.
func NewCupomHandler(base *BaseHandler, service *fiscal.Service) *CupomHandler {
	return &CupomHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires cupom endpoints onto the group.
func (h *CupomHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.POST("/:id/emitir", h.Emit)
	rg.POST("/:id/cancelar", h.Cancel)
}

// Create issues a standalone cupom fiscal.
// POST /api/cupons
func (h *CupomHandler) Create(c *gin.Context) {
	var req dto.CreateCupomRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cupom := req.ToEntity()
	if err := h.service.Issue(c.Request.Context(), cupom); err != nil {
		h.Error(c, err)
		return
	}
	metrics.CuponsIssued.Inc()
	h.Created(c, cupom.ID)
}

// Get retrieves one cupom.
// GET /api/cupons/:id
func (h *CupomHandler) Get(c *gin.Context) {
	cupomID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cupom, err := h.service.GetByID(c.Request.Context(), cupomID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cupom)
}

// Emit transitions a pending cupom to emitted.
// POST /api/cupons/:id/emitir
func (h *CupomHandler) Emit(c *gin.Context) {
	cupomID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cupom, err := h.service.Emit(c.Request.Context(), cupomID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cupom)
}

// Cancel transitions a cupom to cancelled.
// POST /api/cupons/:id/cancelar
func (h *CupomHandler) Cancel(c *gin.Context) {
	cupomID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	cupom, err := h.service.Cancel(c.Request.Context(), cupomID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cupom)
}

// List retrieves cupons with filtering.
// GET /api/cupons
func (h *CupomHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := fiscal.ListFilter{ListFilter: query.ToFilter()}
	filter.Status = fiscal.Status(c.Query("status"))
	if raw := c.Query("vendaId"); raw != "" {
		parsed, err := parseQueryID(raw)
		if err != nil {
			h.Error(c, err)
			return
		}
		filter.SaleID = &parsed
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}
