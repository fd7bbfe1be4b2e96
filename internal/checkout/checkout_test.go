package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/cart"
	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
)

func setup(t *testing.T) (*Checkout, *cart.Cart, *[]time.Duration) {
	t.Helper()
	c := cart.New(cart.Promo{Code: "GUNDAM10", Percent: 10}, nil)
	var waits []time.Duration
	co := New(c, Options{
		PaymentDelay: 2 * time.Second,
		Sleep:        func(d time.Duration) { waits = append(waits, d) },
	})
	return co, c, &waits
}

func addProduct(t *testing.T, c *cart.Cart, id string, qty int) {
	t.Helper()
	cat, err := catalog.New(catalog.Static())
	require.NoError(t, err)
	p, ok := cat.Get(id)
	require.True(t, ok)
	require.NoError(t, c.Add(p, qty))
}

var side7 = ShippingDetails{Name: "Amuro Ray", Address: "12 Hangar Rd", Colony: "Side 7", Zip: "00079"}

func TestPlaceOrder(t *testing.T) {
	co, c, waits := setup(t)
	addProduct(t, c, "1", 2)
	require.NoError(t, c.ApplyPromo("GUNDAM10"))

	require.NoError(t, co.SubmitShipping(side7))
	assert.Equal(t, StepPayment, co.Step())

	o, err := co.PlaceOrder(context.Background(), "PILOT-1", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "PILOT-1", o.PilotID)
	assert.Equal(t, int64(12000), o.Totals.Subtotal)
	assert.Equal(t, int64(10800), o.Totals.Total)
	assert.Equal(t, "Side 7", o.Shipping.Colony)
	assert.Equal(t, []time.Duration{2 * time.Second}, *waits)

	assert.True(t, c.Empty())
	assert.Equal(t, StepConfirmation, co.Step())
	assert.False(t, co.Processing())

	last, ok := co.LastOrder()
	require.True(t, ok)
	assert.Equal(t, o.ID, last.ID)

	co.Reset()
	assert.Equal(t, StepShipping, co.Step())
}

func TestPlaceOrder_InlineShipping(t *testing.T) {
	co, c, _ := setup(t)
	addProduct(t, c, "6", 1)

	d := side7
	o, err := co.PlaceOrder(context.Background(), "", &d)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), o.Totals.Total)
}

func TestPlaceOrder_Rejections(t *testing.T) {
	co, c, waits := setup(t)

	_, err := co.PlaceOrder(context.Background(), "", &side7)
	assert.True(t, apperr.IsValidation(err), "empty cart")

	addProduct(t, c, "6", 1)
	_, err = co.PlaceOrder(context.Background(), "", nil)
	assert.True(t, apperr.IsValidation(err), "no shipping yet")

	bad := side7
	bad.Colony = "   "
	_, err = co.PlaceOrder(context.Background(), "", &bad)
	assert.True(t, apperr.IsValidation(err))

	assert.Empty(t, *waits)
	assert.False(t, c.Empty())
}

func TestPlaceOrder_LateAddStaysInCart(t *testing.T) {
	c := cart.New(cart.Promo{Code: "GUNDAM10", Percent: 10}, nil)
	addProduct(t, c, "1", 1)

	added := false
	co := New(c, Options{
		Sleep: func(time.Duration) {},
		Now: func() time.Time {
			// lands after the cart was taken
			if !added {
				added = true
				addProduct(t, c, "6", 1)
			}
			return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
		},
	})

	o, err := co.PlaceOrder(context.Background(), "", &side7)
	require.NoError(t, err)

	require.Len(t, o.Items, 1)
	assert.Equal(t, "1", o.Items[0].ID)
	assert.Equal(t, int64(6000), o.Totals.Subtotal)

	left := c.Items()
	require.Len(t, left, 1, "the late item is neither lost nor billed")
	assert.Equal(t, "6", left[0].ID)
}

func TestPlaceOrder_AddDuringPaymentIsBilledConsistently(t *testing.T) {
	c := cart.New(cart.Promo{}, nil)
	addProduct(t, c, "1", 1)

	co := New(c, Options{Sleep: func(time.Duration) { addProduct(t, c, "6", 2) }})

	o, err := co.PlaceOrder(context.Background(), "", &side7)
	require.NoError(t, err)

	assert.Equal(t, cart.ComputeTotals(o.Items, 0), o.Totals)
	assert.Equal(t, 3, o.Totals.Count)
	assert.True(t, c.Empty())
}

func TestPlaceOrder_ProcessingDuringPayment(t *testing.T) {
	c := cart.New(cart.Promo{}, nil)
	addProduct(t, c, "6", 1)

	var (
		co            *Checkout
		busyInside    bool
		secondAttempt error
	)
	co = New(c, Options{Sleep: func(time.Duration) {
		busyInside = co.Processing()
		_, secondAttempt = co.PlaceOrder(context.Background(), "", nil)
	}})

	_, err := co.PlaceOrder(context.Background(), "", &side7)
	require.NoError(t, err)

	assert.True(t, busyInside)
	assert.True(t, apperr.IsConflict(secondAttempt))
	assert.False(t, co.Processing())
}
