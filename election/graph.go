package election

import (
	"github.com/katalvlaran/electorium/introspect"
	"github.com/katalvlaran/electorium/vote"
)

// graph is the dense, index-based form of an election. Ids are assigned in
// input order; every derived array is indexed by them. The reverse adjacency
// is stored as intrusive linked lists (votedForMe heads, votingForSame next
// pointers) so that no per-node slices are allocated.
type graph struct {
	votes []vote.Vote

	// voteFor[i] is the id i delegates to, or none.
	voteFor []int32
	// votedForMe[i] is the first id that delegates to i, or none.
	votedForMe []int32
	// votingForSame[j] is the next id delegating to voteFor[j], or none.
	votingForSame []int32

	// ringID[i] is the ring i belongs to, or none.
	ringID []int32
	// rings holds each ring's members in ascending internal id.
	rings [][]int32

	// potential[i] is i's total potential votes after full delegation.
	potential []uint64

	willing int // count of willing candidates
}

// buildGraph runs stage S1: id assignment, target resolution, and reverse
// adjacency. Dangling, self-referential, and empty targets all resolve to
// abstention; none of them is an error.
func buildGraph(votes []vote.Vote, is *introspect.Introspector) *graph {
	n := len(votes)
	g := &graph{
		votes:         votes,
		voteFor:       make([]int32, n),
		votedForMe:    make([]int32, n),
		votingForSame: make([]int32, n),
	}

	// 1. Index identities. On collision the later record wins the mapping;
	//    Resolve rejects collisions up front unless validation is off.
	idByName := make(map[string]int32, n)
	for i := range votes {
		if _, dup := idByName[votes[i].VoterID]; dup {
			is.EmitInvalidVote(introspect.InvalidVote{Cause: introspect.CauseDuplicate, Vote: &votes[i]})
		}
		idByName[votes[i].VoterID] = int32(i)
		if votes[i].WillingCandidate {
			g.willing++
		}
	}

	// 2. Resolve targets and link the reverse adjacency lists.
	for i := range votes {
		g.voteFor[i] = none
		g.votedForMe[i] = none
		g.votingForSame[i] = none
	}
	var v *vote.Vote
	for i := range votes {
		v = &votes[i]
		switch {
		case v.VoteFor == "":
			is.EmitInvalidVote(introspect.InvalidVote{Cause: introspect.CauseNoVote, Vote: v})
		case v.VoteFor == v.VoterID:
			is.EmitInvalidVote(introspect.InvalidVote{Cause: introspect.CauseSelfVote, Vote: v})
		default:
			target, ok := idByName[v.VoteFor]
			if !ok {
				is.EmitInvalidVote(introspect.InvalidVote{Cause: introspect.CauseUnrecognized, Vote: v})

				continue
			}
			if target == int32(i) {
				// A duplicate id can alias a record back onto itself.
				is.EmitInvalidVote(introspect.InvalidVote{Cause: introspect.CauseSelfVote, Vote: v})

				continue
			}
			g.voteFor[i] = target
			g.votingForSame[i] = g.votedForMe[target]
			g.votedForMe[target] = int32(i)
		}
	}

	return g
}

// traceDelegations replays every delegation chain hop-by-hop for the
// introspector. This is the O(N·chain) walk of the reference description;
// the resolver only runs it when somebody subscribed, because the linear
// potential computation does not need it.
func (g *graph) traceDelegations(is *introspect.Introspector) {
	n := len(g.votes)
	onPath := make([]int32, n) // epoch marks, id+1 per walk
	chain := make([]int32, 0, 8)

	for i := 0; i < n; i++ {
		epoch := int32(i) + 1
		chain = chain[:0]
		chain = append(chain, int32(i))
		onPath[i] = epoch

		from := &g.votes[i]
		because := from
		for next := g.voteFor[i]; next != none; next = g.voteFor[next] {
			if onPath[next] == epoch {
				ring := make([]*vote.Vote, len(chain))
				for k, id := range chain {
					ring[k] = &g.votes[id]
				}
				is.EmitDelegationRing(introspect.DelegationRing{Chain: ring, Next: &g.votes[next]})

				break
			}
			is.EmitVoteDelegation(introspect.VoteDelegation{
				From:      from,
				To:        &g.votes[next],
				BecauseOf: because,
			})
			onPath[next] = epoch
			chain = append(chain, next)
			because = &g.votes[next]
		}
	}
}
