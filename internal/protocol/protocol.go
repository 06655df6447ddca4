package protocol

// Client message types.
const (
	MsgKey  = "key"
	MsgPing = "ping"
)

// Server message types.
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgPong    = "pong"
	MsgError   = "error"
)

// Error codes carried in the Message field of an error envelope.
const (
	ErrBadPayload      = "bad_payload"
	ErrUnknownKey      = "unknown_key"
	ErrUnsupportedType = "unsupported_message_type"
	ErrRateLimited     = "rate_limited"
	ErrServerFull      = "server_full"
)
