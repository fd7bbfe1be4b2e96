package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/bootstrap"
	"github.com/ariefcatur/gunpla-storefront/internal/config"
	"github.com/ariefcatur/gunpla-storefront/internal/httpx"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage
	st, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("storage", zap.Error(err))
	}
	defer closeStore()

	// Catalog
	cat, err := bootstrap.OpenCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal("catalog", zap.Error(err))
	}

	// Events
	pub, stopPub := bootstrap.Publisher(ctx, cfg, log)

	app, err := bootstrap.NewApp(ctx, cfg, cat, st, pub, log)
	if err != nil {
		log.Fatal("storefront", zap.Error(err))
	}

	// deals countdown
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				app.Deals().Tick()
			}
		}
	}()

	router := httpx.NewRouter()
	(&httpx.StorefrontHandler{App: app, Log: log.Named("http")}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := srv.Shutdown(ctx2); err != nil {
		// handler yang masih jalan tetap aman: publish setelah Close hanya di-drop
		log.Warn("http shutdown", zap.Error(err))
	}
	// server sudah berhenti, baru flush producer
	stopPub()
	cancel()
}
