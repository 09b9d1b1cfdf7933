// Package app hosts the application flows that sequence several
// domain services into one business operation.
package app

import (
	"context"
	"fmt"

	"pdv/internal/core/id"
	"pdv/internal/domain/fiscal"
	"pdv/internal/domain/ledger"
	"pdv/internal/domain/sale"
	"pdv/internal/domain/stock"
	"pdv/pkg/logger"
	"pdv/pkg/metrics"
)

// Config holds the reversal policy for sale cancellation.
// Both default to off: cancelling a confirmed sale flags the document
// and leaves applied stock and ledger effects in place.
type Config struct {
	RestockOnCancel       bool
	ReverseLedgerOnCancel bool
}

// SaleFlow orchestrates sale confirmation and cancellation across the
// sale, stock, ledger and fiscal services.
type SaleFlow struct {
	sales  *sale.Service
	stock  *stock.Service
	ledger *ledger.Service
	fiscal *fiscal.Service
	config Config
}

// NewSaleFlow creates the flow with the given reversal policy.
func NewSaleFlow(sales *sale.Service, stockService *stock.Service, ledgerService *ledger.Service, fiscalService *fiscal.Service, config Config) *SaleFlow {
	return &SaleFlow{
		sales:  sales,
		stock:  stockService,
		ledger: ledgerService,
		fiscal: fiscalService,
		config: config,
	}
}

// Confirm applies a pending sale: one exit movement per item, then the
// income ledger entry, then the status flip to completed.
//
// If an exit fails (typically insufficient stock) the confirmation
// aborts and the sale stays pending. If the ledger entry fails after
// stock was already applied, the failure is logged and the
// confirmation continues: stock correctness wins over ledger
// completeness, and the missing entry is recorded manually later.
func (f *SaleFlow) Confirm(ctx context.Context, saleID id.ID, user string) (*sale.Sale, error) {
	doc, err := f.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := doc.CanTransition(sale.StatusCompleted); err != nil {
		return nil, err
	}

	for _, item := range doc.Items {
		movement := stock.NewMovement(item.ProductID, stock.TypeExit, item.Quantity)
		movement.DocumentRef = doc.Number
		movement.Reason = fmt.Sprintf("venda %s", doc.Number)
		movement.ResponsibleUser = user
		if err := f.stock.Record(ctx, movement); err != nil {
			return nil, err
		}
		metrics.StockMovements.WithLabelValues(string(stock.TypeExit)).Inc()
	}

	tx := ledger.NewTransaction(ledger.TypeIncome, doc.Total)
	tx.Category = "vendas"
	tx.Description = fmt.Sprintf("venda %s", doc.Number)
	tx.PaymentMethod = doc.PaymentMethod
	tx.Status = ledger.StatusCompleted
	tx.ResponsibleUser = user
	if err := f.ledger.Record(ctx, tx); err != nil {
		metrics.LedgerCompensationFailures.Inc()
		logger.Error(ctx, "ledger entry failed after stock was applied; continuing confirmation",
			"venda", doc.Number,
			"valor", doc.Total,
			"error", err,
		)
	}

	confirmed, err := f.sales.MarkCompleted(ctx, saleID)
	if err != nil {
		return nil, err
	}

	metrics.SalesConfirmed.Inc()
	logger.Info(ctx, "sale confirmed",
		"id", confirmed.ID,
		"numero", confirmed.Number,
		"total", confirmed.Total,
	)
	return confirmed, nil
}

// Cancel flags the sale as cancelled. When the sale had been confirmed
// and the corresponding policy flag is on, the applied effects are
// reversed with explicit compensating records: entry movements
// restocking each item, and an expense entry offsetting the income.
func (f *SaleFlow) Cancel(ctx context.Context, saleID id.ID, user string) (*sale.Sale, error) {
	doc, err := f.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if doc.Status == sale.StatusCancelled {
		return doc, nil
	}
	wasCompleted := doc.Status == sale.StatusCompleted

	cancelled, err := f.sales.Cancel(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if wasCompleted && f.config.RestockOnCancel {
		for _, item := range cancelled.Items {
			movement := stock.NewMovement(item.ProductID, stock.TypeEntry, item.Quantity)
			movement.DocumentRef = cancelled.Number
			movement.Reason = fmt.Sprintf("estorno venda %s", cancelled.Number)
			movement.ResponsibleUser = user
			if err := f.stock.Record(ctx, movement); err != nil {
				logger.Error(ctx, "restock on cancel failed",
					"venda", cancelled.Number,
					"produto", item.ProductID,
					"error", err,
				)
			} else {
				metrics.StockMovements.WithLabelValues(string(stock.TypeEntry)).Inc()
			}
		}
	}

	if wasCompleted && f.config.ReverseLedgerOnCancel {
		tx := ledger.NewTransaction(ledger.TypeExpense, cancelled.Total)
		tx.Category = "vendas"
		tx.Description = fmt.Sprintf("estorno venda %s", cancelled.Number)
		tx.PaymentMethod = cancelled.PaymentMethod
		tx.Status = ledger.StatusCompleted
		tx.ResponsibleUser = user
		if err := f.ledger.Record(ctx, tx); err != nil {
			logger.Error(ctx, "ledger reversal on cancel failed",
				"venda", cancelled.Number,
				"valor", cancelled.Total,
				"error", err,
			)
		}
	}

	metrics.SalesCancelled.Inc()
	return cancelled, nil
}

// IssueCupom generates the cupom fiscal for a completed sale.
func (f *SaleFlow) IssueCupom(ctx context.Context, saleID id.ID) (*fiscal.CupomFiscal, error) {
	doc, err := f.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	cupom, err := f.fiscal.IssueFromSale(ctx, doc)
	if err != nil {
		return nil, err
	}

	metrics.CuponsIssued.Inc()
	return cupom, nil
}
