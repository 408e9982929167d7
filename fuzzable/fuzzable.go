// Package fuzzable exposes the resolver as a byte-buffer harness: any input
// slice decodes to an election (votewire), resolves, and reports a small
// integer outcome. Negative statuses classify the run; a non-negative status
// is the winner's wire id.
//
// After every successful resolution the harness re-runs the election with
// the winner's own delegation revoked and checks the winner still holds the
// maximum vote total. Revoking a vote the winner cast can only take votes
// away from others, so the winner keeps the top spot whenever that vote did
// not flow back to the winner through a delegation ring. A violation means a
// resolver defect, not a bad input.
package fuzzable

import (
	"github.com/untillpro/goutils/logger"

	"github.com/katalvlaran/electorium/election"
	"github.com/katalvlaran/electorium/introspect/logging"
	"github.com/katalvlaran/electorium/vote"
	"github.com/katalvlaran/electorium/votewire"
)

// Statuses returned by Run. Non-negative values are winner wire ids.
const (
	// StatusNoWinner reports an election without a willing candidate.
	StatusNoWinner int16 = -1
	// StatusInvariant reports a failed revocation post-check.
	StatusInvariant int16 = -2
	// StatusMalformed reports duplicate voter identities in the input.
	StatusMalformed int16 = -3
)

// Harness runs byte-buffer election cases.
type Harness struct {
	verbose bool
}

// New returns a Harness. With verbose set, each run attaches the logging
// introspector and traces every resolution stage at Verbose level.
func New(verbose bool) *Harness {
	if verbose {
		logger.SetLogLevel(logger.LogLevelVerbose)
	}

	return &Harness{verbose: verbose}
}

// Run decodes data as wire records, resolves the election, and returns the
// outcome status. It never panics on user input; a panic escaping the
// resolver is a defect in the resolver itself.
func (h *Harness) Run(data []byte) int16 {
	votes := votewire.Decode(data)

	opts := []election.Option{}
	if h.verbose {
		opts = append(opts, election.WithIntrospector(logging.New()))
	}

	res, err := election.Resolve(votes, opts...)
	if err != nil {
		return StatusMalformed
	}
	if res.Winner == nil {
		return StatusNoWinner
	}

	if !h.revocationHolds(votes, res) {
		return StatusInvariant
	}

	// Decode assigns votes in record order, so the winner's wire id sits in
	// the second byte of its own record.
	return int16(data[res.Index*4+1])
}

// revocationHolds re-resolves with the winner's delegation cleared and
// verifies the winner still tops the vote totals. The check is skipped when
// the winner's delegation chain loops back to the winner: breaking a ring
// the winner belongs to legitimately lowers the winner's own total.
func (h *Harness) revocationHolds(votes []vote.Vote, res *election.Result) bool {
	winner := res.Winner
	if winner.VoteFor == "" {
		return true
	}
	if inRingWith(votes, winner.VoterID) {
		return true
	}

	revoked := make([]vote.Vote, len(votes))
	copy(revoked, votes)
	revoked[res.Index].VoteFor = ""

	rerun, err := election.Resolve(revoked)
	if err != nil || rerun.Winner == nil {
		return false
	}
	if len(rerun.Ranking) == 0 {
		return false
	}
	top := rerun.Ranking[0].Votes
	for _, rank := range rerun.Ranking {
		if rank.Index == res.Index {
			return rank.Votes == top
		}
	}

	return false
}

// inRingWith reports whether the identity's delegation chain returns to the
// identity itself. Later records win duplicate identities, matching the
// resolver's own target resolution.
func inRingWith(votes []vote.Vote, id string) bool {
	target := make(map[string]string, len(votes))
	for i := range votes {
		target[votes[i].VoterID] = votes[i].VoteFor
	}
	seen := make(map[string]bool, len(votes))
	cur := target[id]
	for cur != "" && !seen[cur] {
		if cur == id {
			return true
		}
		seen[cur] = true
		cur = target[cur]
	}

	return false
}
