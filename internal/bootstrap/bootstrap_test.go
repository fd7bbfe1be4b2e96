package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/config"
	"github.com/ariefcatur/gunpla-storefront/internal/events"
	"github.com/ariefcatur/gunpla-storefront/internal/storage"
)

func TestDefaultsNeedNoInfrastructure(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()
	cfg := config.Config{StorageBackend: "memory", CatalogSource: "static", PromoCode: "GUNDAM10", PromoPercent: 10}

	st, closeStore, err := OpenStore(ctx, cfg, log)
	require.NoError(t, err)
	defer closeStore()
	assert.IsType(t, &storage.Memory{}, st)

	cat, err := OpenCatalog(ctx, cfg, log)
	require.NoError(t, err)
	assert.Equal(t, 8, cat.Len())

	pub, stop := Publisher(ctx, cfg, log)
	defer stop()
	assert.Equal(t, events.Nop{}, pub)

	app, err := NewApp(ctx, cfg, cat, st, pub, log)
	require.NoError(t, err)
	require.NoError(t, app.AddToCart("1", 1))
	require.NoError(t, app.Cart().ApplyPromo("GUNDAM10"))
	assert.Equal(t, int64(5400), app.Cart().Totals().Total)
}

func TestUnknownBackends(t *testing.T) {
	ctx := context.Background()
	_, _, err := OpenStore(ctx, config.Config{StorageBackend: "etcd"}, zap.NewNop())
	assert.Error(t, err)

	_, err = OpenCatalog(ctx, config.Config{CatalogSource: "csv"}, zap.NewNop())
	assert.Error(t, err)
}
