package agent

import loggerpkg "github.com/minhyannv/toolbot-go/pkg/logger"

// BotOption configures optional runtime dependencies for Bot.
type BotOption func(*botDeps)

type botDeps struct {
	logger loggerpkg.Logger
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) BotOption {
	return func(d *botDeps) {
		d.logger = l
	}
}
