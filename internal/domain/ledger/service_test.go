package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/internal/core/types"
	"pdv/internal/domain/ledger"
	"pdv/internal/infrastructure/memory"
)

func newLedgerService() *ledger.Service {
	return ledger.NewService(memory.NewTransactionStore())
}

func record(t *testing.T, svc *ledger.Service, txType ledger.TransactionType, amount string) *ledger.Transaction {
	t.Helper()
	tx := ledger.NewTransaction(txType, types.MustMoney(amount))
	tx.Description = "lancamento de teste"
	tx.Category = "geral"
	require.NoError(t, svc.Record(context.Background(), tx))
	return tx
}

func TestBalanceSumsSignedAmounts(t *testing.T) {
	svc := newLedgerService()
	ctx := context.Background()

	record(t, svc, ledger.TypeIncome, "100.00")
	record(t, svc, ledger.TypeIncome, "50.50")
	record(t, svc, ledger.TypeExpense, "30.00")

	balance, err := svc.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Equal(types.MustMoney("120.50")))
}

func TestCancelledEntriesLeaveBalanceButStayListed(t *testing.T) {
	svc := newLedgerService()
	ctx := context.Background()

	record(t, svc, ledger.TypeIncome, "100.00")
	expense := record(t, svc, ledger.TypeExpense, "40.00")

	_, err := svc.Cancel(ctx, expense.ID)
	require.NoError(t, err)

	balance, err := svc.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Equal(types.MustMoney("100.00")))

	// Cancelled entry remains in the historical record.
	kept, err := svc.GetByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusCancelled, kept.Status)
}

func TestCancelIsIdempotent(t *testing.T) {
	svc := newLedgerService()
	ctx := context.Background()

	tx := record(t, svc, ledger.TypeIncome, "10.00")

	first, err := svc.Cancel(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusCancelled, first.Status)

	second, err := svc.Cancel(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusCancelled, second.Status)
}

func TestCancelledEntriesAreImmutable(t *testing.T) {
	svc := newLedgerService()
	ctx := context.Background()

	tx := record(t, svc, ledger.TypeExpense, "25.00")
	_, err := svc.Cancel(ctx, tx.ID)
	require.NoError(t, err)

	newAmount := types.MustMoney("99.00")
	_, err = svc.Update(ctx, tx.ID, ledger.UpdateFields{Amount: &newAmount})
	assert.Error(t, err)

	_, err = svc.Complete(ctx, tx.ID)
	assert.Error(t, err)
}

func TestRecordRejectsInvalidEntries(t *testing.T) {
	svc := newLedgerService()
	ctx := context.Background()

	t.Run("non-positive amount", func(t *testing.T) {
		tx := ledger.NewTransaction(ledger.TypeIncome, types.Zero())
		tx.Description = "sem valor"
		assert.Error(t, svc.Record(ctx, tx))
	})

	t.Run("missing description", func(t *testing.T) {
		tx := ledger.NewTransaction(ledger.TypeIncome, types.MustMoney("5.00"))
		assert.Error(t, svc.Record(ctx, tx))
	})

	t.Run("unknown type", func(t *testing.T) {
		tx := ledger.NewTransaction("transferencia", types.MustMoney("5.00"))
		tx.Description = "tipo invalido"
		assert.Error(t, svc.Record(ctx, tx))
	})
}

func TestSummaryByCategory(t *testing.T) {
	svc := newLedgerService()
	ctx := context.Background()

	vendas := ledger.NewTransaction(ledger.TypeIncome, types.MustMoney("200.00"))
	vendas.Description = "venda balcao"
	vendas.Category = "vendas"
	require.NoError(t, svc.Record(ctx, vendas))

	aluguel := ledger.NewTransaction(ledger.TypeExpense, types.MustMoney("80.00"))
	aluguel.Description = "aluguel loja"
	aluguel.Category = "despesas fixas"
	require.NoError(t, svc.Record(ctx, aluguel))

	summary, err := svc.SummaryByCategory(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// Sorted by category name.
	assert.Equal(t, "despesas fixas", summary[0].Category)
	assert.True(t, summary[0].Expense.Equal(types.MustMoney("80.00")))
	assert.Equal(t, "vendas", summary[1].Category)
	assert.True(t, summary[1].Income.Equal(types.MustMoney("200.00")))
}
