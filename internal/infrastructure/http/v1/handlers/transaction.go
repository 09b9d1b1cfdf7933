package handlers

import (
	"github.com/gin-gonic/gin"

	"pdv/internal/core/appctx"
	"pdv/internal/domain/ledger"
	"pdv/internal/infrastructure/http/v1/dto"
)

// TransactionHandler provides financial ledger endpoints.
type TransactionHandler struct {
	*BaseHandler
	service *ledger.Service
}

// NewTransactionHandler creates a transaction handler.
func NewTransactionHandler(base *BaseHandler, service *ledger.Service) *TransactionHandler {
	return &TransactionHandler{BaseHandler: base, service: service}
}

// RegisterRoutes wires ledger endpoints onto the group.
func (h *TransactionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transacoes", h.Create)
	rg.GET("/transacoes", h.List)
	rg.GET("/transacoes/:id", h.Get)
	rg.PUT("/transacoes/:id", h.Update)
	rg.POST("/transacoes/:id/concluir", h.Complete)
	rg.POST("/transacoes/:id/cancelar", h.Cancel)
	rg.GET("/saldo", h.Balance)
	rg.GET("/relatorios/categorias", h.SummaryByCategory)
}

// Create records a ledger entry.
// POST /api/financeiro/transacoes
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tx := req.ToEntity()
	tx.ResponsibleUser = appctx.GetUser(c.Request.Context())

	if err := h.service.Record(c.Request.Context(), tx); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, tx.ID)
}

// Get retrieves one transaction.
// GET /api/financeiro/transacoes/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	tx, err := h.service.GetByID(c.Request.Context(), txID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, tx)
}

// Update applies a partial update.
// PUT /api/financeiro/transacoes/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	tx, err := h.service.Update(c.Request.Context(), txID, req.ToFields())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, tx)
}

// Complete marks a pending transaction as completed.
// POST /api/financeiro/transacoes/:id/concluir
func (h *TransactionHandler) Complete(c *gin.Context) {
	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	tx, err := h.service.Complete(c.Request.Context(), txID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, tx)
}

// Cancel removes a transaction from the balance computation.
// POST /api/financeiro/transacoes/:id/cancelar
func (h *TransactionHandler) Cancel(c *gin.Context) {
	txID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	tx, err := h.service.Cancel(c.Request.Context(), txID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, tx)
}

// Balance returns the current ledger balance.
// GET /api/financeiro/saldo
func (h *TransactionHandler) Balance(c *gin.Context) {
	balance, err := h.service.Balance(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.BalanceResponse{Balance: balance})
}

// SummaryByCategory aggregates income and expense per category.
// GET /api/financeiro/relatorios/categorias
func (h *TransactionHandler) SummaryByCategory(c *gin.Context) {
	summary, err := h.service.SummaryByCategory(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, summary)
}

// List retrieves transactions with filtering.
// GET /api/financeiro/transacoes
func (h *TransactionHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	filter := ledger.ListFilter{ListFilter: query.ToFilter()}
	filter.Type = ledger.TransactionType(c.Query("tipo"))
	filter.Status = ledger.Status(c.Query("status"))
	filter.Category = c.Query("categoria")

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, result)
}
