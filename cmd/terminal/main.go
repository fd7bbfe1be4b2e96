// Command terminal is the command overlay as a line-oriented REPL over a local storefront.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/gunpla-storefront/internal/bootstrap"
	"github.com/ariefcatur/gunpla-storefront/internal/config"
	"github.com/ariefcatur/gunpla-storefront/internal/logx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "warn" // keep the scrollback readable
	}
	log, err := logx.New(cfg.LogLevel, true)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	st, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("storage", zap.Error(err))
	}
	defer closeStore()

	cat, err := bootstrap.OpenCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal("catalog", zap.Error(err))
	}
	pub, stopPub := bootstrap.Publisher(ctx, cfg, log)
	defer stopPub()

	app, err := bootstrap.NewApp(ctx, cfg, cat, st, pub, log)
	if err != nil {
		log.Fatal("storefront", zap.Error(err))
	}
	app.SetTerminalOpen(true)

	term := app.Terminal()
	for _, l := range term.History() {
		fmt.Println("#", l)
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s|%s] > ", app.Theme(), app.Screen())
		if !in.Scan() {
			return
		}
		// the typed line is already on screen; skip its echo
		out := term.Exec(in.Text())
		if len(out) > 0 && strings.HasPrefix(out[0], "> ") {
			out = out[1:]
		}
		for _, l := range out {
			fmt.Println("#", l)
		}
		if app.Snapshot().TerminalOpen {
			continue
		}
		if f := strings.Fields(strings.ToLower(in.Text())); len(f) > 0 && f[0] == "exit" {
			return
		}
		// goto closes the overlay; here that only means a new screen
		fmt.Printf("-- now viewing %s --\n", app.Screen())
		app.SetTerminalOpen(true)
	}
}
