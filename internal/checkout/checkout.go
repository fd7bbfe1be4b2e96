// Package checkout runs the shipping -> payment -> confirmation flow over the cart.
// Payment card fields never reach this package.
package checkout

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/cart"
	"github.com/ariefcatur/gunpla-storefront/internal/clock"
)

type Step string

const (
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

type ShippingDetails struct {
	Name    string `json:"name" validate:"notblank"`
	Address string `json:"address" validate:"notblank"`
	Colony  string `json:"colony" validate:"notblank"`
	Zip     string `json:"zip" validate:"notblank"`
}

type Order struct {
	ID       string          `json:"id"`
	PilotID  string          `json:"pilot_id,omitempty"`
	Items    []cart.Item     `json:"items"`
	Totals   cart.Totals     `json:"totals"`
	Shipping ShippingDetails `json:"shipping"`
	PlacedAt time.Time       `json:"placed_at"`
}

type Options struct {
	PaymentDelay time.Duration
	Sleep        clock.Sleeper
	Now          clock.Now
	Log          *zap.Logger
}

type Checkout struct {
	cart *cart.Cart
	opts Options

	mu       sync.Mutex
	step     Step
	shipping *ShippingDetails
	last     *Order

	processing atomic.Bool
}

func New(c *cart.Cart, opts Options) *Checkout {
	if opts.Sleep == nil {
		opts.Sleep = clock.RealSleep
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Checkout{cart: c, opts: opts, step: StepShipping}
}

func (co *Checkout) Step() Step {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.step
}

// Processing is true while the simulated payment is in flight.
func (co *Checkout) Processing() bool { return co.processing.Load() }

// SubmitShipping validates the record and advances to the payment step.
func (co *Checkout) SubmitShipping(d ShippingDetails) error {
	d = trim(d)
	if err := apperr.Struct(d); err != nil {
		return err
	}
	co.mu.Lock()
	defer co.mu.Unlock()
	co.shipping = &d
	co.step = StepPayment
	return nil
}

// PlaceOrder authorises the (mock) payment, snapshots the cart into an Order and empties the cart.
// When d is nil the details from SubmitShipping are used.
func (co *Checkout) PlaceOrder(ctx context.Context, pilotID string, d *ShippingDetails) (Order, error) {
	if co.cart.Empty() {
		return Order{}, apperr.Validation("cart is empty")
	}
	if d != nil {
		if err := co.SubmitShipping(*d); err != nil {
			return Order{}, err
		}
	}
	co.mu.Lock()
	ship := co.shipping
	co.mu.Unlock()
	if ship == nil {
		return Order{}, apperr.Validation("shipping details are required")
	}
	if !co.processing.CompareAndSwap(false, true) {
		return Order{}, apperr.Conflict("payment already processing")
	}
	defer co.processing.Store(false)

	co.opts.Sleep(co.opts.PaymentDelay)

	items, totals, ok := co.cart.Take()
	if !ok {
		return Order{}, apperr.Validation("cart is empty")
	}
	o := Order{
		ID:       uuid.NewString(),
		PilotID:  pilotID,
		Items:    items,
		Totals:   totals,
		Shipping: *ship,
		PlacedAt: co.opts.Now().UTC(),
	}

	co.mu.Lock()
	co.step = StepConfirmation
	co.last = &o
	co.mu.Unlock()

	co.opts.Log.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("items", o.Totals.Count),
		zap.Int64("total_cents", o.Totals.Total),
		zap.String("colony", o.Shipping.Colony))
	return o, nil
}

func (co *Checkout) LastOrder() (Order, bool) {
	co.mu.Lock()
	defer co.mu.Unlock()
	if co.last == nil {
		return Order{}, false
	}
	return *co.last, true
}

// Reset returns to the shipping step ("Return to Hangar").
func (co *Checkout) Reset() {
	co.mu.Lock()
	defer co.mu.Unlock()
	co.step = StepShipping
	co.shipping = nil
}

func trim(d ShippingDetails) ShippingDetails {
	d.Name = strings.TrimSpace(d.Name)
	d.Address = strings.TrimSpace(d.Address)
	d.Colony = strings.TrimSpace(d.Colony)
	d.Zip = strings.TrimSpace(d.Zip)
	return d
}
