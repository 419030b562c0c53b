package cycle

import (
	"errors"

	"github.com/katalvlaran/lvlcycle/core"
)

// Sentinel errors returned by Check and Runner.
var (
	// ErrSourceNotFound is returned when the requested source ID is not an
	// endpoint of any edge.
	ErrSourceNotFound = errors.New("cycle: source vertex not found")

	// ErrUnknownStrategy is returned for a strategy name that is not supported.
	ErrUnknownStrategy = errors.New("cycle: unknown strategy")
)

// DefaultSource is the vertex the reference usage starts from.
const DefaultSource core.VertexID = 0

// Option configures a single check.
type Option func(*Options)

// Options holds the resolved parameters of a check.
type Options struct {
	// Source is the traversal start when FirstEdgeSource and AllComponents are unset.
	Source core.VertexID
	// FirstEdgeSource starts from the source endpoint of the first edge.
	FirstEdgeSource bool
	// AllComponents checks every connected component instead of only the
	// one containing the source.
	AllComponents bool
	// Strategy selects the traversal.
	Strategy Strategy
}

// DefaultOptions starts from vertex 0 with the recursive depth-first strategy.
func DefaultOptions() Options {
	return Options{
		Source:   DefaultSource,
		Strategy: StrategyDFS,
	}
}

// WithSource starts the traversal at id.
func WithSource(id core.VertexID) Option {
	return func(o *Options) {
		o.Source = id
		o.FirstEdgeSource = false
	}
}

// WithFirstEdgeSource starts the traversal at the source of the first edge.
func WithFirstEdgeSource() Option {
	return func(o *Options) {
		o.FirstEdgeSource = true
	}
}

// WithAllComponents checks the whole forest; the source options are ignored.
func WithAllComponents() Option {
	return func(o *Options) {
		o.AllComponents = true
	}
}

// WithStrategy selects the traversal strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// newOptions applies opts over the defaults and validates the result.
func newOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.Strategy.Validate(); err != nil {
		return o, err
	}

	return o, nil
}

// sourceFor resolves the start vertex ID for edges.
func (o Options) sourceFor(edges []core.Edge) core.VertexID {
	if o.FirstEdgeSource && len(edges) > 0 {
		return edges[0].Source
	}

	return o.Source
}
