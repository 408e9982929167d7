// Package vote defines the core data model of an electorium election:
// the Vote record and election-level validation.
//
// A Vote is simultaneously a ballot and a candidacy: the record names a
// participant (VoterID), the weight of anonymous votes they carry (Votes),
// and the single participant they delegate to (VoteFor, empty = abstain).
// Records whose WillingCandidate flag is false relay their weight through
// the delegation graph but can never be elected.
//
// Errors:
//
//   - ErrDuplicateVoter  if two records share the same VoterID.
package vote

import (
	"errors"
	"fmt"
)

// ErrDuplicateVoter indicates that two Vote records share the same VoterID.
var ErrDuplicateVoter = errors.New("vote: duplicate voter id")

// Vote is one election record: a participant, their anonymous vote weight,
// and the participant they delegate their own vote to.
type Vote struct {
	// VoterID is the opaque identity of this participant.
	// Equality is byte-exact; the resolver never interprets the contents.
	VoterID string

	// VoteFor is the VoterID of the participant this record delegates to.
	// Empty means abstain. A VoteFor equal to VoterID, or naming no record
	// in the election, is also treated as abstain.
	VoteFor string

	// Votes is the number of anonymous votes carried by this record.
	// In a typical national election this would be 1; for stock companies
	// it would be the number of shares.
	Votes uint64

	// WillingCandidate reports whether this participant is willing to win.
	// Unwilling records relay votes but are skipped when selecting rings,
	// patrons, and the winner.
	WillingCandidate bool
}

// Validate checks election-level invariants over a slice of Vote records.
// The only reportable violation is a duplicated VoterID; dangling or
// self-referential VoteFor values are legal and resolve to abstention.
func Validate(votes []Vote) error {
	seen := make(map[string]struct{}, len(votes))
	var v *Vote
	for i := range votes {
		v = &votes[i]
		if _, dup := seen[v.VoterID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateVoter, v.VoterID)
		}
		seen[v.VoterID] = struct{}{}
	}

	return nil
}
