// Package connectivity answers structural reachability queries over a
// graph snapshot: the connectivity test and component enumeration.
//
// For undirected graphs a component is the usual maximal set of mutually
// reachable vertices. For directed graphs two policies exist:
//
//   - PolicyWeak (default): direction is ignored, giving weak components —
//     the more permissive reading and the one the interactive tool reports.
//   - PolicyStrong: mutual reachability is required, giving strongly
//     connected components via Kosaraju's two-pass algorithm.
//
// Determinism: traversal seeds scan vertex IDs ascending, so groups are
// emitted in first-visited-representative order and members are sorted
// ascending. The empty graph is connected by convention.
//
// Complexity: O(V + E) for both policies.
package connectivity

import "errors"

// ErrNilGraph is returned when a nil *core.Graph is passed in.
var ErrNilGraph = errors.New("connectivity: graph is nil")

// Policy selects how direction is treated when grouping directed graphs.
type Policy int

const (
	// PolicyWeak ignores edge direction (weak connectivity).
	PolicyWeak Policy = iota

	// PolicyStrong requires mutual reachability (strong connectivity).
	PolicyStrong
)

// Options configures the connectivity queries.
type Options struct {
	// Policy applies to directed graphs only; undirected graphs have a
	// single notion of connectivity.
	Policy Policy
}

// Option is a functional option for Options.
type Option func(*Options)

// WithPolicy selects the directed-graph connectivity policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) { o.Policy = p }
}

// DefaultOptions returns the defaults: PolicyWeak.
func DefaultOptions() Options {
	return Options{Policy: PolicyWeak}
}
