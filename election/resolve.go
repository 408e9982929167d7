package election

import (
	"sort"

	"github.com/katalvlaran/electorium/introspect"
	"github.com/katalvlaran/electorium/vote"
)

// Resolve computes the winner of a delegated-vote election.
// It returns an empty Result (Winner == nil) when no willing candidate
// exists; that outcome is not an error.
func Resolve(votes []vote.Vote, opts ...Option) (*Result, error) {
	// 1. Apply options.
	ropts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&ropts)
	}
	is := ropts.Introspector

	// 2. Validate.
	if ropts.Validate {
		if err := vote.Validate(votes); err != nil {
			return nil, err
		}
	}

	// 3. S1: dense ids, target resolution, reverse adjacency.
	g := buildGraph(votes, is)

	// 4. S2: rings and potentials.
	g.findRings()
	g.computePotentials()
	if is.WantsDelegation() {
		g.traceDelegations(is)
	}

	// 5. Rank willing candidates by descending potential (stable on input
	//    position: the order never influences the outcome, only reporting).
	ordered := g.orderedWilling()
	res := &Result{Index: -1, Ranking: make([]Rank, len(ordered))}
	for k, id := range ordered {
		res.Ranking[k] = Rank{Index: int(id), Votes: g.potential[id]}
	}
	if len(ordered) == 0 {
		is.EmitNoWinner()

		return res, nil
	}

	// 6. S3: best bucket and runner-up bucket.
	b := g.buckets(ordered)
	g.emitBestRings(is, b)

	// 7. S4a: solo scores of the best set; tentative winner(s).
	tentative, _ := g.bestOfRing(is, b)

	// 8. S4b/S5: patron recursion, or tie-break when several remain.
	var winner int32
	switch {
	case len(tentative) > 1:
		// Tied solo scores: patrons are skipped, the hash decides.
		winner = g.tieBreak(is, tentative, b.bestVotes)
	case b.multiRing:
		// The best bucket straddled several real rings; after the
		// out-of-ring comparison patrons are not consulted.
		winner = tentative[0]
	default:
		winner = g.findPatrons(is, tentative[0], b)
	}

	res.Winner = &votes[winner]
	res.Index = int(winner)
	res.Votes = g.potential[winner]
	is.EmitWinner(introspect.Winner{Candidate: res.Winner, Votes: res.Votes})

	return res, nil
}

// orderedWilling returns the willing candidate ids sorted by descending
// potential, ties broken by ascending input position.
func (g *graph) orderedWilling() []int32 {
	ordered := make([]int32, 0, g.willing)
	for i := range g.votes {
		if g.votes[i].WillingCandidate {
			ordered = append(ordered, int32(i))
		}
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		return g.potential[ordered[a]] > g.potential[ordered[b]]
	})

	return ordered
}

// buckets summarizes the ranked candidates for stages S3..S5.
type buckets struct {
	// ordered is the descending ranking of willing candidate ids.
	ordered []int32
	// best holds every candidate tied at the maximum potential.
	best []int32
	// inBest flags membership of best by id.
	inBest []bool
	// bestVotes is the shared potential of the best set.
	bestVotes uint64
	// runnerAt is the position in ordered of the first candidate below the
	// best set, or len(ordered) when the best set is everyone.
	runnerAt int
	// multiRing reports that the best set spans two or more real rings.
	multiRing bool
}

// buckets runs stage S3 over the ranking.
func (g *graph) buckets(ordered []int32) *buckets {
	b := &buckets{
		ordered:   ordered,
		inBest:    make([]bool, len(g.votes)),
		bestVotes: g.potential[ordered[0]],
	}
	b.runnerAt = len(ordered)
	for k, id := range ordered {
		if g.potential[id] != b.bestVotes {
			b.runnerAt = k

			break
		}
		b.best = append(b.best, id)
		b.inBest[id] = true
	}

	firstRing := none
	for _, id := range b.best {
		rid := g.ringID[id]
		if rid == none {
			continue
		}
		if firstRing == none {
			firstRing = rid

			continue
		}
		if rid != firstRing {
			b.multiRing = true

			break
		}
	}

	return b
}

// emitBestRings publishes the S3 outcome, grouping the best set by real
// ring; isolated members form one-element groups.
func (g *graph) emitBestRings(is *introspect.Introspector, b *buckets) {
	if is == nil || is.OnBestRings == nil {
		return
	}
	e := introspect.BestRings{Votes: b.bestVotes}
	grouped := make(map[int32]int, len(g.rings))
	for _, id := range b.best {
		rid := g.ringID[id]
		if rid == none {
			e.Members = append(e.Members, []*vote.Vote{&g.votes[id]})

			continue
		}
		at, ok := grouped[rid]
		if !ok {
			at = len(e.Members)
			grouped[rid] = at
			e.Members = append(e.Members, nil)
		}
		e.Members[at] = append(e.Members[at], &g.votes[id])
	}
	if b.runnerAt < len(b.ordered) {
		ru := b.ordered[b.runnerAt]
		e.RunnerUp = &g.votes[ru]
		e.RunnerUpVote = g.potential[ru]
	}
	is.EmitBestRings(e)
}

// bestOfRing runs stage S4a: score every best-set member as if all other
// members abstained, returning the member(s) with the maximum solo score
// and that score. The solo score is the member's own anonymous weight plus
// the potential of every direct predecessor outside the set.
func (g *graph) bestOfRing(is *introspect.Introspector, b *buckets) ([]int32, uint64) {
	var (
		out     []int32
		scores  []introspect.RingScore
		winning uint64
	)
	trace := is != nil && is.OnBestOfRing != nil
	for _, id := range b.best {
		score := g.votes[id].Votes
		for p := g.votedForMe[id]; p != none; p = g.votingForSame[p] {
			if !b.inBest[p] {
				score += g.potential[p]
			}
		}
		if trace {
			scores = append(scores, introspect.RingScore{Candidate: &g.votes[id], Score: score})
		}
		if len(out) == 0 || score > winning {
			out = out[:0]
			winning = score
		}
		if score == winning {
			out = append(out, id)
		}
	}
	if trace {
		e := introspect.BestOfRing{Scores: scores, Winners: make([]*vote.Vote, len(out))}
		for k, id := range out {
			e.Winners[k] = &g.votes[id]
		}
		is.EmitBestOfRing(e)
	}

	return out, winning
}
