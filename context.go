package flex

import "github.com/hashicorp/go-hclog"

// MeasureOutput is the layout context's scratch record that receives the
// width and height a MeasureFunction returns, per spec.md §4.3/§4.6.
type MeasureOutput struct {
	Width  float64
	Height float64
}

// layoutContext is the per-CalculateLayout scratch carrier threaded by
// reference through every recursive layoutNode invocation. It is not
// thread-safe; one context serves exactly one CalculateLayout call.
type layoutContext struct {
	measureOutput MeasureOutput
	logger        hclog.Logger
}

func newLayoutContext(logger hclog.Logger) *layoutContext {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &layoutContext{logger: logger}
}

// measure invokes node's MeasureFunction through the context's scratch
// output, matching spec.md §4.3's "always calls node.measure through the
// layoutContext.measureOutput scratch object" requirement.
func (ctx *layoutContext) measure(node *Node, availableWidth float64) MeasureOutput {
	w, h := node.measure(node, availableWidth)
	ctx.measureOutput.Width = w
	ctx.measureOutput.Height = h
	return ctx.measureOutput
}
