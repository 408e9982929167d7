// Package introspect exposes the election resolver's decision stream as
// typed events. Attach hooks to an Introspector and pass it to the resolver
// to observe every delegation, ring closure, patron decision, and tie-break
// exactly as it happens.
//
// A nil *Introspector is valid and silent, so library code can emit events
// unconditionally:
//
//	var is *introspect.Introspector // nil: every Emit* is a no-op
//	is.EmitWinner(introspect.Winner{...})
//
// Hooks are plain function fields; unset hooks cost one nil check. Events
// whose construction is expensive are guarded by Wants* predicates so the
// resolver can skip building them when nobody listens.
package introspect

// Introspector dispatches resolution events to optional hooks.
// The zero value discards everything.
type Introspector struct {
	OnInvalidVote     func(InvalidVote)
	OnVoteDelegation  func(VoteDelegation)
	OnDelegationRing  func(DelegationRing)
	OnBestRings       func(BestRings)
	OnBestOfRing      func(BestOfRing)
	OnPatronSelection func(PatronSelection)
	OnTieBreak        func(TieBreak)
	OnWinner          func(Winner)
	OnNoWinner        func()
}

// WantsDelegation reports whether per-hop delegation events are observed.
// Emitting them costs a full chain walk per record, so the resolver asks first.
func (is *Introspector) WantsDelegation() bool {
	return is != nil && (is.OnVoteDelegation != nil || is.OnDelegationRing != nil)
}

// EmitInvalidVote dispatches an InvalidVote event.
func (is *Introspector) EmitInvalidVote(e InvalidVote) {
	if is != nil && is.OnInvalidVote != nil {
		is.OnInvalidVote(e)
	}
}

// EmitVoteDelegation dispatches a VoteDelegation event.
func (is *Introspector) EmitVoteDelegation(e VoteDelegation) {
	if is != nil && is.OnVoteDelegation != nil {
		is.OnVoteDelegation(e)
	}
}

// EmitDelegationRing dispatches a DelegationRing event.
func (is *Introspector) EmitDelegationRing(e DelegationRing) {
	if is != nil && is.OnDelegationRing != nil {
		is.OnDelegationRing(e)
	}
}

// EmitBestRings dispatches a BestRings event.
func (is *Introspector) EmitBestRings(e BestRings) {
	if is != nil && is.OnBestRings != nil {
		is.OnBestRings(e)
	}
}

// EmitBestOfRing dispatches a BestOfRing event.
func (is *Introspector) EmitBestOfRing(e BestOfRing) {
	if is != nil && is.OnBestOfRing != nil {
		is.OnBestOfRing(e)
	}
}

// EmitPatronSelection dispatches a PatronSelection event.
func (is *Introspector) EmitPatronSelection(e PatronSelection) {
	if is != nil && is.OnPatronSelection != nil {
		is.OnPatronSelection(e)
	}
}

// EmitTieBreak dispatches a TieBreak event.
func (is *Introspector) EmitTieBreak(e TieBreak) {
	if is != nil && is.OnTieBreak != nil {
		is.OnTieBreak(e)
	}
}

// EmitWinner dispatches a Winner event.
func (is *Introspector) EmitWinner(e Winner) {
	if is != nil && is.OnWinner != nil {
		is.OnWinner(e)
	}
}

// EmitNoWinner dispatches the no-winner event.
func (is *Introspector) EmitNoWinner() {
	if is != nil && is.OnNoWinner != nil {
		is.OnNoWinner()
	}
}
