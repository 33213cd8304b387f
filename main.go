package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"moodbot/app/client/completion"
	"moodbot/app/client/huggingface"
	"moodbot/app/client/newsapi"
	"moodbot/app/client/twilio"
	"moodbot/app/config"
	"moodbot/app/server"
	"moodbot/app/service/conversation"
	"moodbot/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, twilio.NewClient)
	do.Provide(di, newsapi.NewClient)
	do.Provide(di, huggingface.NewClient)
	do.Provide(di, completion.NewClient)
	do.Provide(di, conversation.New)
	do.Provide(di, server.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go func() {
		if err := do.MustInvoke[*server.Server](di).Run(appCtx); err != nil {
			slog.Error("Server stopped", "error", err)
			cancel()
		}
	}()

	<-appCtx.Done()
}
