package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
)

func product(t *testing.T, id string) catalog.Product {
	t.Helper()
	c, err := catalog.New(catalog.Static())
	require.NoError(t, err)
	p, ok := c.Get(id)
	require.True(t, ok)
	return p
}

func newCart() *Cart { return New(Promo{Code: "GUNDAM10", Percent: 10}, nil) }

func TestAdd_SameProductMergesQuantity(t *testing.T) {
	c := newCart()
	rx := product(t, "1")

	for _, q := range []int{1, 2, 4} {
		require.NoError(t, c.Add(rx, q))
	}

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	c := newCart()
	err := c.Add(product(t, "1"), 0)
	assert.True(t, apperr.IsValidation(err))
	assert.True(t, c.Empty())
}

func TestUpdateQuantity_ClampsAtOne(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(product(t, "1"), 2))

	for _, d := range []int{-1, -5, -100, 0} {
		c.UpdateQuantity("1", d)
		assert.GreaterOrEqual(t, c.Items()[0].Quantity, 1)
	}
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.UpdateQuantity("1", 3)
	assert.Equal(t, 4, c.Items()[0].Quantity)

	c.UpdateQuantity("missing", 3)
	assert.Len(t, c.Items(), 1)
}

func TestScenario_AddUpdateRemove(t *testing.T) {
	c := newCart()
	a := product(t, "3")

	require.NoError(t, c.Add(a, 1))
	require.NoError(t, c.Add(a, 2))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 3, c.Items()[0].Quantity)

	c.UpdateQuantity(a.ID, -5)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.Remove(a.ID)
	assert.Empty(t, c.Items())
}

func TestCount_SumsQuantities(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(product(t, "1"), 2))
	require.NoError(t, c.Add(product(t, "2"), 3))
	require.NoError(t, c.Add(product(t, "6"), 1))

	assert.Equal(t, 6, c.Count())
	assert.Equal(t, 6, c.Totals().Count)
}

func TestTotals_UsesSalePrice(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(product(t, "1"), 1)) // 60.00
	require.NoError(t, c.Add(product(t, "2"), 2)) // 2 x 22.50

	got := c.Totals()
	assert.Equal(t, int64(10500), got.Subtotal)
	assert.Equal(t, int64(0), got.Discount)
	assert.Equal(t, int64(10500), got.Total)
}

func TestApplyPromo(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(product(t, "1"), 1))
	require.NoError(t, c.Add(product(t, "8"), 1))

	require.NoError(t, c.ApplyPromo("gundam10"))
	got := c.Totals()
	assert.Equal(t, int64(15500), got.Subtotal)
	assert.Equal(t, int64(1550), got.Discount)
	assert.Equal(t, got.Subtotal*9/10, got.Total)
	assert.Equal(t, "GUNDAM10", got.PromoCode)

	// rejected code keeps the discount that was already there
	assert.ErrorIs(t, c.ApplyPromo("ZAKU50"), ErrInvalidPromo)
	assert.Equal(t, int64(1550), c.Totals().Discount)

	require.NoError(t, c.ApplyPromo(""))
	assert.Equal(t, c.Totals().Subtotal, c.Totals().Total)
}

func TestApplyPromo_InvalidOnFreshCart(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(product(t, "5"), 1))

	assert.ErrorIs(t, c.ApplyPromo("nope"), ErrInvalidPromo)
	got := c.Totals()
	assert.Equal(t, got.Subtotal, got.Total)
	assert.Empty(t, got.PromoCode)
}

func TestComputeTotals_Rounding(t *testing.T) {
	items := []Item{{Product: catalog.Product{ID: "x", PriceCents: 2255}, Quantity: 1}}
	got := ComputeTotals(items, 10)
	assert.Equal(t, int64(226), got.Discount)
	assert.Equal(t, int64(2029), got.Total)
}

func TestClear(t *testing.T) {
	c := newCart()
	require.NoError(t, c.Add(product(t, "1"), 1))
	require.NoError(t, c.ApplyPromo("GUNDAM10"))

	c.Clear()
	assert.True(t, c.Empty())
	assert.Empty(t, c.Totals().PromoCode)
}

func TestTake(t *testing.T) {
	c := newCart()
	_, _, ok := c.Take()
	assert.False(t, ok)

	require.NoError(t, c.Add(product(t, "1"), 2))
	require.NoError(t, c.ApplyPromo("GUNDAM10"))

	items, totals, ok := c.Take()
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, int64(12000), totals.Subtotal)
	assert.Equal(t, int64(10800), totals.Total)
	assert.Equal(t, "GUNDAM10", totals.PromoCode)

	assert.True(t, c.Empty())
	assert.Empty(t, c.Totals().PromoCode)
}

func TestNew_ClampsPromoPercent(t *testing.T) {
	c := New(Promo{Code: "FREE", Percent: 150}, nil)
	require.NoError(t, c.Add(product(t, "1"), 1))
	require.NoError(t, c.ApplyPromo("free"))

	tot := c.Totals()
	assert.Equal(t, tot.Subtotal, tot.Discount)
	assert.Equal(t, int64(0), tot.Total)
}
