package fiscal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pdv/internal/core/types"
)

func TestAddItemKeepsDiscountedLineTotal(t *testing.T) {
	cupom := NewCupom(CustomerSnapshot{Name: "Consumidor Final"}, types.PaymentCash)

	// 3 × 9.90 with a 0.70 discount already folded in.
	cupom.AddItem(Item{
		Description: "Chocolate 90g",
		Quantity:    types.NewQuantity(3),
		UnitValue:   types.MustMoney("9.90"),
		TotalValue:  types.MustMoney("29.00"),
	})

	assert.True(t, cupom.Items[0].TotalValue.Equal(types.MustMoney("29.00")))
	assert.True(t, cupom.Total.Equal(types.MustMoney("29.00")))
}

func TestAddItemFillsZeroLineTotal(t *testing.T) {
	cupom := NewCupom(CustomerSnapshot{Name: "Consumidor Final"}, types.PaymentCash)

	cupom.AddItem(Item{
		Description: "Item avulso",
		Quantity:    types.NewQuantity(2),
		UnitValue:   types.MustMoney("3.00"),
	})

	assert.True(t, cupom.Items[0].TotalValue.Equal(types.MustMoney("6.00")))
	assert.True(t, cupom.Total.Equal(types.MustMoney("6.00")))
}

func TestRecomputeTotalSumsStoredLineTotals(t *testing.T) {
	cupom := NewCupom(CustomerSnapshot{Name: "Consumidor Final"}, types.PaymentPix)
	cupom.Items = []Item{
		{Quantity: types.NewQuantity(1), UnitValue: types.MustMoney("10.00"), TotalValue: types.MustMoney("9.50")},
		{Quantity: types.NewQuantity(2), UnitValue: types.MustMoney("4.00"), TotalValue: types.MustMoney("8.00")},
	}

	cupom.RecomputeTotal()

	assert.True(t, cupom.Items[0].TotalValue.Equal(types.MustMoney("9.50")))
	assert.True(t, cupom.Total.Equal(types.MustMoney("17.50")))
}
