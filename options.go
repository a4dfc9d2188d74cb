package flex

import "github.com/hashicorp/go-hclog"

// Option configures a CalculateLayout call. The zero value of every option
// is a no-op so CalculateLayout(root, width) without options behaves
// exactly as spec.md describes.
type Option func(*layoutContext)

// WithLogger attaches a structured logger: each CalculateLayout call is
// logged at debug level and each node's relayout decision (cache hit vs.
// recompute) at trace level. Dirty propagation and measure invocations are
// not logged. Without this option the engine logs nothing.
func WithLogger(logger hclog.Logger) Option {
	return func(ctx *layoutContext) {
		if logger != nil {
			ctx.logger = logger
		}
	}
}
