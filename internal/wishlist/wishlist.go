package wishlist

import (
	"sync"

	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
)

// Wishlist is a set of product ids; insertion order is kept for IDs().
type Wishlist struct {
	mu  sync.Mutex
	ids []string
	set map[string]struct{}
}

func New() *Wishlist { return &Wishlist{set: map[string]struct{}{}} }

// Toggle flips membership and reports whether id is in the set afterwards.
func (w *Wishlist) Toggle(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.set[id]; ok {
		delete(w.set, id)
		out := w.ids[:0]
		for _, x := range w.ids {
			if x != id {
				out = append(out, x)
			}
		}
		w.ids = out
		return false
	}
	w.set[id] = struct{}{}
	w.ids = append(w.ids, id)
	return true
}

func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.set[id]
	return ok
}

func (w *Wishlist) IDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.ids))
	copy(out, w.ids)
	return out
}

func (w *Wishlist) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.ids)
}

// List returns the wishlisted products in catalog order.
func (w *Wishlist) List(c *catalog.Catalog) []catalog.Product {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []catalog.Product
	for _, p := range c.All() {
		if _, ok := w.set[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// TotalValue is the cost of one of each wishlisted product at effective price.
func (w *Wishlist) TotalValue(c *catalog.Catalog) int64 {
	var sum int64
	for _, p := range w.List(c) {
		sum += p.EffectivePrice()
	}
	return sum
}
