package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
)

func TestToggleTwiceRestoresMembership(t *testing.T) {
	w := New()
	w.Toggle("3")
	before := w.IDs()

	assert.True(t, w.Toggle("5"))
	assert.False(t, w.Toggle("5"))
	assert.Equal(t, before, w.IDs())

	assert.False(t, w.Toggle("3"))
	assert.True(t, w.Toggle("3"))
	assert.Equal(t, before, w.IDs())
}

func TestList_PreservesCatalogOrder(t *testing.T) {
	c, err := catalog.New(catalog.Static())
	require.NoError(t, err)

	w := New()
	w.Toggle("8")
	w.Toggle("2")
	w.Toggle("unknown")

	got := w.List(c)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "8", got[1].ID)
	assert.Equal(t, 3, w.Len())
	assert.True(t, w.Contains("unknown"))

	// 22.50 (sale) + 95.00
	assert.Equal(t, int64(11750), w.TotalValue(c))
}
