// Package cart owns the line items of the current session and the totals derived from them.
package cart

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/apperr"
	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
)

// ErrInvalidPromo is non-fatal: the cart and the current discount stay as they were.
var ErrInvalidPromo = errors.New("Invalid Code")

// Item is one product with its quantity; quantity is always >= 1.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

func (it Item) LineTotal() int64 { return it.EffectivePrice() * int64(it.Quantity) }

type Totals struct {
	Subtotal  int64  `json:"subtotal_cents"`
	Discount  int64  `json:"discount_cents"`
	Total     int64  `json:"total_cents"`
	PromoCode string `json:"promo_code,omitempty"`
	Count     int    `json:"count"`
}

type Promo struct {
	Code    string
	Percent int
}

type Cart struct {
	mu      sync.Mutex
	items   []Item
	promo   Promo
	applied string // kode promo yang sedang aktif, "" = tanpa diskon
	log     *zap.Logger
}

func New(promo Promo, log *zap.Logger) *Cart {
	if log == nil {
		log = zap.NewNop()
	}
	promo.Percent = min(max(promo.Percent, 0), 100)
	return &Cart{promo: promo, log: log}
}

// Add merges into an existing line for the same product instead of duplicating it.
func (c *Cart) Add(p catalog.Product, qty int) error {
	if qty < 1 {
		return apperr.Validationf("invalid qty for product %s", p.ID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity += qty
			c.log.Debug("cart quantity increased", zap.String("product_id", p.ID), zap.Int("quantity", c.items[i].Quantity))
			return nil
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: qty})
	c.log.Debug("cart item added", zap.String("product_id", p.ID), zap.Int("quantity", qty))
	return nil
}

// UpdateQuantity clamps at 1; reaching zero does not remove the line. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = max(1, c.items[i].Quantity+delta)
			return
		}
	}
}

func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	c.items = out
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.applied = ""
}

func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CountItems(c.items)
}

func (c *Cart) Empty() bool { return c.Count() == 0 }

// ApplyPromo matches the configured code case-insensitively. An empty code drops the discount.
func (c *Cart) ApplyPromo(code string) error {
	code = strings.TrimSpace(code)
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case code == "":
		c.applied = ""
		return nil
	case c.promo.Code != "" && strings.EqualFold(code, c.promo.Code):
		c.applied = strings.ToUpper(code)
		c.log.Info("promo applied", zap.String("code", c.applied), zap.Int("percent", c.promo.Percent))
		return nil
	default:
		return ErrInvalidPromo
	}
}

func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals()
}

// Take empties the cart and returns what it held, lines and totals from the
// same instant. ok is false, and nothing changes, when the cart is empty.
func (c *Cart) Take() (items []Item, t Totals, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil, Totals{}, false
	}
	items, t = c.items, c.totals()
	c.items = nil
	c.applied = ""
	return items, t, true
}

func (c *Cart) totals() Totals {
	pct := 0
	if c.applied != "" {
		pct = c.promo.Percent
	}
	t := ComputeTotals(c.items, pct)
	t.PromoCode = c.applied
	return t
}

// ComputeTotals: subtotal of effective prices, percent discount rounded half up to the cent.
func ComputeTotals(items []Item, percent int) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += it.LineTotal()
	}
	if percent > 0 {
		t.Discount = (t.Subtotal*int64(percent) + 50) / 100
	}
	t.Total = t.Subtotal - t.Discount
	t.Count = CountItems(items)
	return t
}

func CountItems(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
