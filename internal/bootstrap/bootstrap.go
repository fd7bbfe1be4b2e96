// Package bootstrap turns Config into the concrete store, catalog source and
// event publisher shared by the cmd binaries.
package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/cart"
	"github.com/ariefcatur/gunpla-storefront/internal/catalog"
	"github.com/ariefcatur/gunpla-storefront/internal/clock"
	"github.com/ariefcatur/gunpla-storefront/internal/config"
	"github.com/ariefcatur/gunpla-storefront/internal/events"
	kafkax "github.com/ariefcatur/gunpla-storefront/internal/kafka"
	"github.com/ariefcatur/gunpla-storefront/internal/postgres"
	"github.com/ariefcatur/gunpla-storefront/internal/storage"
	"github.com/ariefcatur/gunpla-storefront/internal/storefront"
)

const producerInbox = 1024

// OpenStore returns the configured key/value backend and its closer.
func OpenStore(ctx context.Context, cfg config.Config, log *zap.Logger) (storage.Store, func(), error) {
	switch cfg.StorageBackend {
	case "", "memory":
		log.Info("storage: in-memory")
		return storage.NewMemory(), func() {}, nil
	case "redis":
		rdb := storage.NewRedisClient(cfg.RedisAddr)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, errors.Wrapf(err, "redis ping %s", cfg.RedisAddr)
		}
		log.Info("storage: redis", zap.String("addr", cfg.RedisAddr), zap.String("prefix", cfg.StoragePrefix))
		return &storage.Redis{Client: rdb, Prefix: cfg.StoragePrefix}, func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, errors.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
}

// OpenCatalog loads the product list from the configured source.
func OpenCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case "", "static":
		return catalog.Load(ctx, catalog.StaticSource{})
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if cfg.CatalogSeed {
			if err := postgres.SeedCatalog(ctx, db, catalog.Static()); err != nil {
				return nil, err
			}
			log.Info("catalog seeded")
		}
		cat, err := catalog.Load(ctx, &catalog.PGSource{DB: db})
		if err != nil {
			return nil, err
		}
		log.Info("catalog loaded from postgres", zap.Int("products", cat.Len()))
		return cat, nil
	default:
		return nil, errors.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
}

// Publisher starts a kafka producer when brokers are configured. The returned
// stop flushes pending events; call it after the last publish.
func Publisher(ctx context.Context, cfg config.Config, log *zap.Logger) (events.Publisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Info("events: disabled (KAFKA_BROKERS empty)")
		return events.Nop{}, func() {}
	}
	p := kafkax.NewProducer(cfg.KafkaBrokers, producerInbox, log.Named("producer"))
	p.Start(ctx)
	log.Info("events: kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	return p, func() {
		p.Close()
		p.WaitClosed()
	}
}

// NewApp builds the storefront over already opened dependencies.
func NewApp(ctx context.Context, cfg config.Config, cat *catalog.Catalog, st storage.Store, pub events.Publisher, log *zap.Logger) (*storefront.App, error) {
	return storefront.New(ctx, storefront.Deps{
		Catalog:        cat,
		Store:          st,
		Publisher:      pub,
		Producer:       cfg.ServiceName,
		Promo:          cart.Promo{Code: cfg.PromoCode, Percent: cfg.PromoPercent},
		StrictComments: cfg.StrictComments,
		LoginDelay:     cfg.LoginDelay,
		RegisterDelay:  cfg.RegisterDelay,
		PaymentDelay:   cfg.PaymentDelay,
		Sleep:          clock.RealSleep,
		Log:            log,
	})
}
