package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/internal/core/apperror"
	"pdv/internal/core/types"
	"pdv/internal/domain/catalog"
	"pdv/internal/domain/stock"
	"pdv/internal/infrastructure/memory"
	"pdv/pkg/numerator"
)

type stockFixture struct {
	stock   *stock.Service
	catalog *catalog.Service
}

func newStockFixture(t *testing.T) *stockFixture {
	t.Helper()
	num := numerator.New(memory.NewSequenceStore())
	catalogService := catalog.NewService(memory.NewProductStore(), num)
	return &stockFixture{
		stock:   stock.NewService(memory.NewMovementStore(), catalogService),
		catalog: catalogService,
	}
}

func (f *stockFixture) seedProduct(t *testing.T, name string, stockQty, minStock int64) *catalog.Product {
	t.Helper()
	product := catalog.NewProduct(name)
	product.SalePrice = types.MustMoney("10.00")
	product.Stock = types.NewQuantity(stockQty)
	product.MinStock = types.NewQuantity(minStock)
	require.NoError(t, f.catalog.Create(context.Background(), product))
	return product
}

func (f *stockFixture) currentStock(t *testing.T, product *catalog.Product) types.Quantity {
	t.Helper()
	current, err := f.catalog.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	return current.Stock
}

func TestEntryIncreasesStock(t *testing.T) {
	f := newStockFixture(t)
	product := f.seedProduct(t, "Oleo 900ml", 5, 0)

	movement := stock.NewMovement(product.ID, stock.TypeEntry, types.NewQuantity(7))
	require.NoError(t, f.stock.Record(context.Background(), movement))

	assert.True(t, f.currentStock(t, product).Equal(types.NewQuantity(12)))
}

func TestExitDecreasesStock(t *testing.T) {
	f := newStockFixture(t)
	product := f.seedProduct(t, "Sal 1kg", 5, 0)

	movement := stock.NewMovement(product.ID, stock.TypeExit, types.NewQuantity(3))
	require.NoError(t, f.stock.Record(context.Background(), movement))

	assert.True(t, f.currentStock(t, product).Equal(types.NewQuantity(2)))
}

func TestExitRejectsInsufficientStock(t *testing.T) {
	f := newStockFixture(t)
	product := f.seedProduct(t, "Farinha 1kg", 2, 0)

	movement := stock.NewMovement(product.ID, stock.TypeExit, types.NewQuantity(3))
	err := f.stock.Record(context.Background(), movement)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)

	// Stock never goes negative.
	assert.True(t, f.currentStock(t, product).Equal(types.NewQuantity(2)))
}

func TestExitToExactlyZeroIsAllowed(t *testing.T) {
	f := newStockFixture(t)
	product := f.seedProduct(t, "Macarrao 500g", 4, 0)

	movement := stock.NewMovement(product.ID, stock.TypeExit, types.NewQuantity(4))
	require.NoError(t, f.stock.Record(context.Background(), movement))

	assert.True(t, f.currentStock(t, product).IsZero())
}

func TestAdjustmentRecordsSnapshotWithoutMutatingStock(t *testing.T) {
	f := newStockFixture(t)
	product := f.seedProduct(t, "Biscoito", 9, 0)

	movement := stock.NewMovement(product.ID, stock.TypeAdjustment, types.NewQuantity(6))
	movement.Reason = "contagem fisica"
	require.NoError(t, f.stock.Record(context.Background(), movement))

	require.NotNil(t, movement.QuantityBefore)
	require.NotNil(t, movement.QuantityAfter)
	assert.True(t, movement.QuantityBefore.Equal(types.NewQuantity(9)))
	assert.True(t, movement.QuantityAfter.Equal(types.NewQuantity(6)))

	// The stock field itself is untouched.
	assert.True(t, f.currentStock(t, product).Equal(types.NewQuantity(9)))
}

func TestTransferLeavesStockUntouched(t *testing.T) {
	f := newStockFixture(t)
	product := f.seedProduct(t, "Refrigerante 2L", 8, 0)

	movement := stock.NewMovement(product.ID, stock.TypeTransfer, types.NewQuantity(3))
	movement.Origin = "deposito"
	movement.Destination = "loja"
	require.NoError(t, f.stock.Record(context.Background(), movement))

	assert.True(t, f.currentStock(t, product).Equal(types.NewQuantity(8)))
}

func TestTransferRequiresLocations(t *testing.T) {
	f := newStockFixture(t)
	product := f.seedProduct(t, "Agua 500ml", 8, 0)

	movement := stock.NewMovement(product.ID, stock.TypeTransfer, types.NewQuantity(1))
	assert.Error(t, f.stock.Record(context.Background(), movement))
}

func TestListByProductReturnsFullHistory(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()
	product := f.seedProduct(t, "Detergente", 10, 0)
	other := f.seedProduct(t, "Esponja", 10, 0)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.stock.Record(ctx, stock.NewMovement(product.ID, stock.TypeEntry, types.NewQuantity(1))))
	}
	require.NoError(t, f.stock.Record(ctx, stock.NewMovement(other.ID, stock.TypeEntry, types.NewQuantity(1))))

	result, err := f.stock.ListByProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)
	for _, m := range result.Items {
		assert.Equal(t, product.ID, m.ProductID)
	}
}

func TestLowStockReport(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	below := f.seedProduct(t, "Abaixo do minimo", 2, 5)
	f.seedProduct(t, "No minimo", 5, 5)
	f.seedProduct(t, "Acima do minimo", 9, 5)

	report, err := f.stock.LowStockReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, below.ID, report[0].ProductID)
	assert.True(t, report[0].CurrentStock.Equal(types.NewQuantity(2)))
	assert.True(t, report[0].MinStock.Equal(types.NewQuantity(5)))
}

func TestZeroStockReport(t *testing.T) {
	f := newStockFixture(t)
	ctx := context.Background()

	zero := f.seedProduct(t, "Zerado", 0, 3)
	f.seedProduct(t, "Com estoque", 1, 3)

	report, err := f.stock.ZeroStockReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, zero.ID, report[0].ProductID)
}
