package gameserver

import (
	"context"
	"fmt"

	"github.com/jssohel603-bot/football-game/internal/config"
	"github.com/jssohel603-bot/football-game/internal/metrics"
	"github.com/jssohel603-bot/football-game/internal/session"
	"github.com/jssohel603-bot/football-game/internal/shared/logger"
	"github.com/jssohel603-bot/football-game/internal/shared/types"
	"github.com/jssohel603-bot/football-game/internal/simulation"
)

// Run wires metrics, sessions and the HTTP server from cfg and serves until
// ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	opts := session.Options{
		Match:          MatchOptions(cfg.Match),
		MaxSessions:    cfg.Server.MaxSessions,
		BroadcastEvery: cfg.Server.BroadcastEvery(),
		Logger:         log.WithPrefix("session"),
	}

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		collector := metrics.NewMatchMetricsCollector()
		if err := collector.Register(); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		opts.Recorder = collector
	}

	return New(cfg, session.NewManager(opts), log).ListenAndServe(ctx)
}

// MatchOptions converts the match config section into simulation options.
func MatchOptions(cfg config.MatchConfig) simulation.Options {
	return simulation.Options{
		HumanTeam:  types.Team(cfg.HumanTeam),
		TeamALabel: cfg.TeamALabel,
		TeamBLabel: cfg.TeamBLabel,
		Seed:       cfg.Seed,
		Autopilot:  cfg.Autopilot,
	}
}
