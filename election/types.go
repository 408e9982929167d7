// Package election defines types and options for delegated-vote resolution:
// introspection attachment, validation control, and the Result record.
package election

import (
	"github.com/katalvlaran/electorium/introspect"
	"github.com/katalvlaran/electorium/vote"
)

// none marks an absent internal id (no delegation target, no ring).
const none = int32(-1)

// Option configures optional behavior of Resolve.
// Use with Resolve(votes, opts...).
type Option func(*Options)

// Options holds configurable parameters for election resolution.
type Options struct {
	// Introspector receives typed events for every decision the resolver
	// makes. Nil discards all events.
	Introspector *introspect.Introspector

	// Validate controls the duplicate-identity check. When false, a
	// duplicated VoterID is tolerated: the later record wins the identity
	// mapping and both records keep their weight. Default is true.
	Validate bool
}

// DefaultOptions returns the Options used when none are given:
// no introspection, validation enabled.
func DefaultOptions() Options {
	return Options{
		Introspector: nil,
		Validate:     true,
	}
}

// WithIntrospector returns an Option that attaches an event stream.
// A nil introspector has no effect.
func WithIntrospector(is *introspect.Introspector) Option {
	return func(o *Options) {
		if is != nil {
			o.Introspector = is
		}
	}
}

// WithoutValidation returns an Option that disables the duplicate-identity
// check, for callers that have already validated their input.
func WithoutValidation() Option {
	return func(o *Options) {
		o.Validate = false
	}
}

// Rank pairs a candidate's input position with their total potential votes.
type Rank struct {
	// Index is the candidate's position in the input slice.
	Index int
	// Votes is the candidate's total potential after full delegation.
	Votes uint64
}

// Result captures the outcome of one resolution.
type Result struct {
	// Winner is the winning record, or nil when no willing candidate exists.
	Winner *vote.Vote

	// Index is the winner's position in the input slice (-1 when empty).
	Index int

	// Votes is the winner's total potential.
	Votes uint64

	// Ranking lists every willing candidate ordered by descending potential
	// (stable on input position). The winner is not necessarily first: a
	// hash tie-break or patron promotion may elevate a lower entry.
	Ranking []Rank
}

// Empty reports whether the election produced no winner.
func (r *Result) Empty() bool {
	return r.Winner == nil
}
