package chatsy

import "log/slog"

// ChatterOption configures a Chatter (e.g. WithModel, WithMaxRounds).
type ChatterOption func(*Chatter)

// WithModel sets the model identifier sent with every completion request.
// When empty, the transport's own default applies.
func WithModel(model string) ChatterOption {
	return func(c *Chatter) {
		c.model = model
	}
}

// WithSystemMessage replaces the system message that leads every outbound
// message list.
func WithSystemMessage(text string) ChatterOption {
	return func(c *Chatter) {
		c.system = text
	}
}

// WithMaxRounds caps the number of remote round trips per Chat call. A model
// that requests tool calls on every response would otherwise loop forever.
// Pass 0 or negative to keep the default: unbounded, looping until the model
// returns a plain answer. Exceeding a positive cap fails the turn with
// ErrRoundLimit.
func WithMaxRounds(n int) ChatterOption {
	return func(c *Chatter) {
		c.maxRounds = n
	}
}

// WithLogger sets the logger used for per-round and per-dispatch debug
// logging. By default the Chatter logs nothing.
func WithLogger(logger *slog.Logger) ChatterOption {
	return func(c *Chatter) {
		c.logger = logger
	}
}
