package config

// MatchConfig holds per-match settings
type MatchConfig struct {
	// Team the human controls: A (defends left) or B
	HumanTeam string `mapstructure:"human_team" validate:"required,oneof=A B"`

	TeamALabel string `mapstructure:"team_a_label" validate:"required,max=32"`
	TeamBLabel string `mapstructure:"team_b_label" validate:"required,max=32"`

	// Shot jitter seed, 0 picks a time-based seed
	Seed int64 `mapstructure:"seed"`

	// Autopilot lets the AI drive the controlled player as well
	Autopilot bool `mapstructure:"autopilot"`
}
