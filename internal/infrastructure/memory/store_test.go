package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/internal/core/apperror"
	"pdv/internal/core/id"
	"pdv/internal/core/types"
	"pdv/internal/domain"
	"pdv/internal/domain/catalog"
	"pdv/internal/domain/sale"
)

func TestProductStoreClonesOnReadAndWrite(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	product := catalog.NewProduct("Original")
	require.NoError(t, store.Create(ctx, product))

	// Mutating the caller's copy after Create does not leak in.
	product.Name = "Alterado depois do create"

	got, err := store.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name)

	// Mutating a read result does not leak back.
	got.Name = "Alterado depois do get"
	again, err := store.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", again.Name)
}

func TestSaleStoreClonesItems(t *testing.T) {
	store := NewSaleStore()
	ctx := context.Background()

	doc := sale.NewSale(id.New(), types.PaymentCash)
	doc.AddItem(sale.Item{
		ProductID: id.New(),
		Quantity:  types.NewQuantity(1),
		UnitPrice: types.MustMoney("3.00"),
	})
	require.NoError(t, store.Create(ctx, doc))

	got, err := store.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	got.Items[0].Quantity = types.NewQuantity(99)

	again, err := store.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, again.Items[0].Quantity.Equal(types.NewQuantity(1)))
}

func TestProductStoreGetMissingReturnsNotFound(t *testing.T) {
	store := NewProductStore()

	product := catalog.NewProduct("Qualquer")
	_, err := store.GetByID(context.Background(), product.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProductStoreListFilters(t *testing.T) {
	store := NewProductStore()
	ctx := context.Background()

	active := catalog.NewProduct("Cerveja Lata")
	active.Category = "bebidas"
	require.NoError(t, store.Create(ctx, active))

	inactive := catalog.NewProduct("Produto descontinuado")
	inactive.Active = false
	require.NoError(t, store.Create(ctx, inactive))

	t.Run("excludes inactive by default", func(t *testing.T) {
		filter := catalog.ListFilter{ListFilter: domain.DefaultListFilter()}
		result, err := store.List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
	})

	t.Run("includes inactive on request", func(t *testing.T) {
		filter := catalog.ListFilter{ListFilter: domain.DefaultListFilter()}
		filter.IncludeInactive = true
		result, err := store.List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		filter := catalog.ListFilter{ListFilter: domain.DefaultListFilter()}
		filter.Search = "cerveja"
		result, err := store.List(ctx, filter)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Cerveja Lata", result.Items[0].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		filter := catalog.ListFilter{ListFilter: domain.DefaultListFilter()}
		filter.Category = "BEBIDAS"
		result, err := store.List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
	})
}

func TestSequenceStoreIsMonotonic(t *testing.T) {
	store := NewSequenceStore()
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := store.Next(ctx, "VND_2026")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Separate keys run independently.
	got, err := store.Next(ctx, "CF_2026")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
