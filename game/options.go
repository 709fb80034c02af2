package game

import (
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
	rules  FleetRules
}

// Option configures a Board.
type Option func(*options)

// WithLogger sets the logger the board writes its debug records to.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFleetRules replaces the classic fleet of DefaultFleetRules with
// rules. The board then accepts any fleet matching rules instead of the
// ten ships of sizes 1 to 4. Ships stay limited to BoardSize decks.
func WithFleetRules(rules FleetRules) Option {
	return func(o *options) {
		o.rules = rules
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.rules == nil {
		o.rules = DefaultFleetRules()
	}
	return o
}
