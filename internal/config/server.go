package config

import "time"

// ServerConfig holds the websocket game server configuration
type ServerConfig struct {
	// Listen address, e.g. ":9003"
	Address string `mapstructure:"address" validate:"required"`

	// Simulation ticks per second
	TickHz int `mapstructure:"tick_hz" validate:"min=1,max=1000"`

	// State broadcasts per second, at most TickHz
	BroadcastHz int `mapstructure:"broadcast_hz" validate:"min=1,ltefield=TickHz"`

	// Sustained key messages per second per connection
	InputRate float64 `mapstructure:"input_rate" validate:"gt=0"`

	// Burst allowance on top of InputRate
	InputBurst int `mapstructure:"input_burst" validate:"min=1"`

	// Default wire codec: json, msgpack
	Codec string `mapstructure:"codec" validate:"required,oneof=json msgpack"`

	// Maximum number of concurrent matches
	MaxSessions int `mapstructure:"max_sessions" validate:"min=1"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// BroadcastEvery returns how many ticks pass between two state broadcasts.
func (c ServerConfig) BroadcastEvery() int {
	if c.BroadcastHz <= 0 || c.BroadcastHz >= c.TickHz {
		return 1
	}
	return c.TickHz / c.BroadcastHz
}
