package election

import (
	"fmt"

	"github.com/katalvlaran/electorium/introspect"
)

// findPatrons runs stage S4b: starting from the unique tentative winner,
// repeatedly look for a patron among the direct predecessors outside the
// best set. A qualifying patron becomes the new tentative winner; the walk
// ends when no predecessor qualifies.
//
// Both references slide with the recursion. The majority reference is the
// current tentative winner's total potential plus their own anonymous
// weight, so a patron always outlives the revocation of their own vote.
// The runner-up reference is the best candidate ranked below the current
// tentative winner.
func (g *graph) findPatrons(is *introspect.Introspector, tentative int32, b *buckets) int32 {
	cur := tentative
	runnerAt := b.runnerAt

	for runnerAt < len(b.ordered) {
		patron := g.patronOf(is, cur, b, runnerAt)
		if patron == none {
			break
		}
		if g.voteFor[patron] != cur {
			panic(fmt.Sprintf("election: patron %q does not delegate to %q",
				g.votes[patron].VoterID, g.votes[cur].VoterID))
		}
		cur = patron
		// The patron was the sole runner-up; the next reference is the
		// best candidate ranked below them.
		for b.ordered[runnerAt] != patron {
			runnerAt++
		}
		runnerAt++
	}

	return cur
}

// patronOf scans the direct predecessors of cur for the single qualifying
// patron. At most one can exist: qualifying means supplying a strict
// majority, and two strict majorities cannot coexist.
func (g *graph) patronOf(is *introspect.Introspector, cur int32, b *buckets, runnerAt int) int32 {
	trace := is != nil && is.OnPatronSelection != nil
	emit := func(p int32, reason introspect.PatronReason, mark uint64) {
		if !trace {
			return
		}
		is.EmitPatronSelection(introspect.PatronSelection{
			Candidate:      &g.votes[cur],
			CandidateVotes: g.potential[cur],
			Patron:         &g.votes[p],
			PatronVotes:    g.potential[p],
			Reason:         reason,
			Mark:           mark,
		})
	}

	runner := b.ordered[runnerAt]
	found := none
	// The winner's own ballots never follow a patron, so they count against
	// the patron's majority on top of everything else flowing in.
	ref := g.potential[cur] + g.votes[cur].Votes

	for p := g.votedForMe[cur]; p != none; p = g.votingForSame[p] {
		if b.inBest[p] {
			emit(p, introspect.PatronLoopCandidate, 0)

			continue
		}
		if !g.votes[p].WillingCandidate {
			emit(p, introspect.PatronNotWilling, 0)

			continue
		}
		// Everything flowing through p reaches cur, so p's potential is
		// exactly the vote mass cur received via p.
		if 2*g.potential[p] <= ref {
			emit(p, introspect.PatronNoMajority, ref/2)

			continue
		}
		if p == runner {
			// The runner-up themselves: they must strictly beat whoever
			// is ranked next, otherwise the runner-up spot is tied and a
			// patron is impossible.
			if runnerAt+1 < len(b.ordered) {
				next := b.ordered[runnerAt+1]
				if g.potential[p] <= g.potential[next] {
					emit(p, introspect.PatronBehindRunnerUp, g.potential[next])

					continue
				}
			}
		} else if g.potential[p] <= g.potential[runner] {
			emit(p, introspect.PatronBehindRunnerUp, g.potential[runner])

			continue
		}
		if found != none {
			panic(fmt.Sprintf("election: candidates %q and %q both qualify as patron of %q",
				g.votes[found].VoterID, g.votes[p].VoterID, g.votes[cur].VoterID))
		}
		found = p
		emit(p, introspect.PatronFound, 0)
	}

	return found
}
