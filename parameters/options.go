package parameters

import (
	"github.com/filecoin-project/go-proofs/config"
	"github.com/filecoin-project/go-proofs/shared"
)

type option struct {
	policy config.PoRepPolicy
	logger shared.Logger
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{
		policy: config.DefaultPoRepPolicy(),
		logger: shared.NoopLogger{},
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

type OptionFunc func(*option)

// WithPoRepPolicy replaces the default replication policy. Networks other
// than mainnet derive against their own sector-size tables.
func WithPoRepPolicy(policy config.PoRepPolicy) OptionFunc {
	return func(o *option) {
		o.policy = policy
	}
}

// WithLogger routes derivation logging to the given logger.
func WithLogger(logger shared.Logger) OptionFunc {
	return func(o *option) {
		o.logger = logger
	}
}
