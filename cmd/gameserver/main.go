package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jssohel603-bot/football-game/internal/config"
	"github.com/jssohel603-bot/football-game/internal/gameserver"
	"github.com/jssohel603-bot/football-game/internal/shared/logger"
)

func main() {
	log := logger.New("gameserver")
	cfg := config.MustLoadConfig(os.Getenv("FOOTBALL_CONFIG"))
	if err := logger.Configure(log, cfg.Logging.Level, cfg.Logging.Format); err != nil {
		log.Fatal("logger setup failed", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := gameserver.Run(ctx, cfg, log); err != nil {
		log.Fatal("server failed", "err", err)
	}
}
