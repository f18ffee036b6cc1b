package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dashboard/internal/app"
	"dashboard/internal/config"
	"dashboard/internal/infra/logger"
	"dashboard/internal/server"
)

func main() {
	//.envは無くてもよい（環境変数だけで動く）
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logger.New("info").Error("config_load_failed", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Store / Usecase / Handler 生成
	a, err := app.Build(ctx, cfg, log)
	if err != nil {
		log.Error("app_build_failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	//Server起動
	e := server.New(cfg, log, a.Handlers())
	if err := server.Start(ctx, cfg.Addr(), e, log); err != nil {
		log.Error("server_failed", "error", err)
		os.Exit(1)
	}
}
