package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":9003"
	}
	if cfg.Server.TickHz == 0 {
		cfg.Server.TickHz = 60
	}
	if cfg.Server.BroadcastHz == 0 {
		cfg.Server.BroadcastHz = 30
	}
	if cfg.Server.InputRate == 0 {
		cfg.Server.InputRate = 120
	}
	if cfg.Server.InputBurst == 0 {
		cfg.Server.InputBurst = 60
	}
	if cfg.Server.Codec == "" {
		cfg.Server.Codec = "json"
	}
	if cfg.Server.MaxSessions == 0 {
		cfg.Server.MaxSessions = 64
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}

	// Match defaults
	if cfg.Match.HumanTeam == "" {
		cfg.Match.HumanTeam = "A"
	}
	if cfg.Match.TeamALabel == "" {
		cfg.Match.TeamALabel = "Red"
	}
	if cfg.Match.TeamBLabel == "" {
		cfg.Match.TeamBLabel = "Blue"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	// Metrics defaults
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
