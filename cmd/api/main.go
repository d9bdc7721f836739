package main

import (
	"log"

	"resume-page/internal/bootstrap"
	"resume-page/internal/shared/config"
	"resume-page/internal/shared/server"
	"resume-page/internal/shared/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := telemetry.Setup(cfg.Env); err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
