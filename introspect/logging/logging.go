// Package logging builds an introspect.Introspector that renders the
// resolver's decision stream as a human-readable trace through the
// goutils logger at Verbose level.
//
// Enable it with:
//
//	logger.SetLogLevel(logger.LogLevelVerbose)
//	res, err := election.Resolve(votes, election.WithIntrospector(logging.New()))
package logging

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/katalvlaran/electorium/introspect"
)

// New returns an Introspector whose hooks log every event.
func New() *introspect.Introspector {
	return &introspect.Introspector{
		OnInvalidVote:     logInvalidVote,
		OnVoteDelegation:  logVoteDelegation,
		OnDelegationRing:  logDelegationRing,
		OnBestRings:       logBestRings,
		OnBestOfRing:      logBestOfRing,
		OnPatronSelection: logPatronSelection,
		OnTieBreak:        logTieBreak,
		OnWinner:          logWinner,
		OnNoWinner:        logNoWinner,
	}
}

func logInvalidVote(e introspect.InvalidVote) {
	logger.Verbose(fmt.Sprintf("Discarding vote from %s/%d because: %s",
		e.Vote.VoterID, e.Vote.Votes, e.Cause))
}

func logVoteDelegation(e introspect.VoteDelegation) {
	logger.Verbose(fmt.Sprintf("Possible delegation of %d vote(s) from %s to %s",
		e.From.Votes, e.From.VoterID, e.To.VoterID))
	if e.BecauseOf.VoterID != e.From.VoterID {
		logger.Verbose(fmt.Sprintf("    Because %s voted for %s",
			e.BecauseOf.VoterID, e.To.VoterID))
	}
}

func logDelegationRing(e introspect.DelegationRing) {
	logger.Verbose("Vote delegation encountered a ring:")
	for _, v := range e.Chain {
		logger.Verbose(fmt.Sprintf("    - %s -> %s", v.VoterID, v.VoteFor))
	}
	logger.Verbose(fmt.Sprintf("    Stop at: %s", e.Next.VoterID))
}

func logBestRings(e introspect.BestRings) {
	logger.Verbose("Tentative winner(s):")
	if len(e.Members) == 0 {
		logger.Verbose("    No candidates found")

		return
	}
	for ir, ring := range e.Members {
		if len(e.Members) > 1 {
			logger.Verbose(fmt.Sprintf("    Ring %d:", ir))
		}
		for _, c := range ring {
			logger.Verbose("    - " + c.VoterID)
		}
	}
	logger.Verbose(fmt.Sprintf("    With %d possible delegated votes", e.Votes))
	if e.RunnerUp != nil {
		logger.Verbose(fmt.Sprintf("    Runner-up: %s with %d", e.RunnerUp.VoterID, e.RunnerUpVote))
	}
}

func logBestOfRing(e introspect.BestOfRing) {
	if len(e.Scores) < 2 {
		return
	}
	logger.Verbose("Within-ring tie-breaker:")
	for _, s := range e.Scores {
		logger.Verbose(fmt.Sprintf("    - %s votes excluding ring: %d", s.Candidate.VoterID, s.Score))
	}
	if len(e.Winners) > 1 {
		logger.Verbose(fmt.Sprintf("    Multiple (%d) tied winners, patron selection will be skipped", len(e.Winners)))
	}
}

func logPatronSelection(e introspect.PatronSelection) {
	var verdict string
	switch e.Reason {
	case introspect.PatronLoopCandidate:
		verdict = "NO - already eliminated by within-ring tie-breaker"
	case introspect.PatronNotWilling:
		verdict = "NO - not a willing candidate"
	case introspect.PatronNoMajority:
		verdict = fmt.Sprintf("NO - does not provide a majority of votes, would need more than %d", e.Mark)
	case introspect.PatronBehindRunnerUp:
		verdict = fmt.Sprintf("NO - can't defeat 2nd best (%d possible votes)", e.Mark)
	case introspect.PatronFound:
		verdict = "YES - patron found"
	}
	logger.Verbose(fmt.Sprintf("Possible patron of %s: %s (with %d possible votes): %s",
		e.Candidate.VoterID, e.Patron.VoterID, e.PatronVotes, verdict))
}

func logTieBreak(e introspect.TieBreak) {
	logger.Verbose("Deterministic tie-breaker:")
	for _, t := range e.Tied {
		var hex strings.Builder
		for _, b := range t.Digest {
			fmt.Fprintf(&hex, "%02x", b)
		}
		logger.Verbose(fmt.Sprintf("    - Hash %s for %s", hex.String(), t.Candidate.VoterID))
	}
}

func logWinner(e introspect.Winner) {
	logger.Verbose(fmt.Sprintf("The winner is: %s with a total of %d delegated votes",
		e.Candidate.VoterID, e.Votes))
}

func logNoWinner() {
	logger.Verbose("No winner could be found")
}
