package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/bootstrap"
	"github.com/ariefcatur/gunpla-storefront/internal/config"
	"github.com/ariefcatur/gunpla-storefront/internal/events"
	"github.com/ariefcatur/gunpla-storefront/internal/feed"
	kafkax "github.com/ariefcatur/gunpla-storefront/internal/kafka"
	"github.com/ariefcatur/gunpla-storefront/internal/logx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log, err := logx.New(cfg.LogLevel, cfg.LogPretty)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BROKERS is required for the feed consumer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// dedup store: redis kalau dikonfigurasi, selain itu in-memory (dedup hilang saat restart)
	st, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("storage", zap.Error(err))
	}
	defer closeStore()

	svc := &feed.Service{Store: st, Log: log.Named("feed")}
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.FeedGroup, events.AllTopics, cfg.FeedWorkers, log.Named("consumer"))

	go func() {
		log.Info("feed consumer started",
			zap.String("group", cfg.FeedGroup),
			zap.Strings("topics", events.AllTopics),
			zap.Int("workers", cfg.FeedWorkers))
		if err := cons.Start(ctx, svc.HandleMessage); err != nil {
			log.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down consumer...")
	cancel()
}
