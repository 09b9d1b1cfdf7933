package sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdv/internal/core/id"
	"pdv/internal/core/types"
)

func TestRecomputeTotals(t *testing.T) {
	doc := NewSale(id.New(), types.PaymentCash)
	doc.AddItem(Item{
		ProductID: id.New(),
		Quantity:  types.NewQuantity(3),
		UnitPrice: types.MustMoney("10.50"),
		Discount:  types.Zero(),
	})
	doc.AddItem(Item{
		ProductID: id.New(),
		Quantity:  types.NewQuantity(2),
		UnitPrice: types.MustMoney("5.00"),
		Discount:  types.MustMoney("1.00"),
	})

	assert.True(t, doc.Subtotal.Equal(types.MustMoney("40.50")))
	assert.True(t, doc.Total.Equal(doc.Subtotal))
	assert.True(t, doc.Items[0].Total.Equal(types.MustMoney("31.50")))
	assert.True(t, doc.Items[1].Total.Equal(types.MustMoney("9.00")))
}

func TestRecomputeTotalsOverridesStaleValues(t *testing.T) {
	doc := NewSale(id.New(), types.PaymentPix)
	doc.Items = []Item{{
		ProductID: id.New(),
		Quantity:  types.NewQuantity(2),
		UnitPrice: types.MustMoney("7.00"),
		Discount:  types.Zero(),
		Total:     types.MustMoney("999.99"),
	}}
	doc.Total = types.MustMoney("999.99")

	doc.RecomputeTotals()

	assert.True(t, doc.Total.Equal(types.MustMoney("14.00")))
	assert.True(t, doc.Items[0].Total.Equal(types.MustMoney("14.00")))
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		doc := NewSale(id.New(), types.PaymentCash)
		doc.AddItem(Item{
			ProductID: id.New(),
			Quantity:  types.NewQuantity(1),
			UnitPrice: types.MustMoney("2.00"),
		})
		require.NoError(t, doc.Validate(ctx))
	})

	t.Run("no items", func(t *testing.T) {
		doc := NewSale(id.New(), types.PaymentCash)
		assert.Error(t, doc.Validate(ctx))
	})

	t.Run("missing customer", func(t *testing.T) {
		doc := NewSale(id.Nil(), types.PaymentCash)
		doc.AddItem(Item{ProductID: id.New(), Quantity: types.NewQuantity(1)})
		assert.Error(t, doc.Validate(ctx))
	})

	t.Run("zero quantity", func(t *testing.T) {
		doc := NewSale(id.New(), types.PaymentCash)
		doc.AddItem(Item{ProductID: id.New(), Quantity: types.Zero()})
		assert.Error(t, doc.Validate(ctx))
	})

	t.Run("unknown payment method", func(t *testing.T) {
		doc := NewSale(id.New(), "cheque")
		doc.AddItem(Item{ProductID: id.New(), Quantity: types.NewQuantity(1)})
		assert.Error(t, doc.Validate(ctx))
	})

	t.Run("discount above line amount", func(t *testing.T) {
		doc := NewSale(id.New(), types.PaymentCash)
		doc.AddItem(Item{
			ProductID: id.New(),
			Quantity:  types.NewQuantity(1),
			UnitPrice: types.MustMoney("5.00"),
			Discount:  types.MustMoney("6.00"),
		})
		assert.Error(t, doc.Validate(ctx))
	})
}

func TestCanTransition(t *testing.T) {
	doc := NewSale(id.New(), types.PaymentCash)

	require.NoError(t, doc.CanTransition(StatusCompleted))
	require.NoError(t, doc.CanTransition(StatusCancelled))

	doc.Status = StatusCompleted
	assert.Error(t, doc.CanTransition(StatusPending))
	assert.Error(t, doc.CanTransition(StatusCompleted))

	doc.Status = StatusCancelled
	assert.Error(t, doc.CanTransition(StatusCompleted))
}
