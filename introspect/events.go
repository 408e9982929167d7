package introspect

import "github.com/katalvlaran/electorium/vote"

// InvalidVoteCause classifies why a VoteFor value was discarded.
type InvalidVoteCause int

const (
	// CauseNoVote: the record abstained (empty VoteFor).
	CauseNoVote InvalidVoteCause = iota
	// CauseSelfVote: the record delegated to itself.
	CauseSelfVote
	// CauseUnrecognized: the VoteFor names no record in the election.
	CauseUnrecognized
	// CauseDuplicate: the record reuses an already-seen VoterID.
	CauseDuplicate
)

// String renders the cause the way the verbose trace prints it.
func (c InvalidVoteCause) String() string {
	switch c {
	case CauseNoVote:
		return "they didn't vote for anyone"
	case CauseSelfVote:
		return "they voted for themselves"
	case CauseUnrecognized:
		return "they voted for someone who is not a voter or candidate"
	case CauseDuplicate:
		return "duplicate voter"
	default:
		return "unknown"
	}
}

// InvalidVote reports a VoteFor value that resolved to abstention,
// or a record whose VoterID repeats an earlier one (the record keeps its
// weight; the later record wins the identity mapping).
type InvalidVote struct {
	Cause InvalidVoteCause
	Vote  *vote.Vote
}

// VoteDelegation reports one hop of a delegation chain: From's weight
// flowing to To, because BecauseOf (the previous chain link) voted for To.
type VoteDelegation struct {
	From      *vote.Vote
	To        *vote.Vote
	BecauseOf *vote.Vote
}

// DelegationRing reports that a delegation chain closed on itself.
// Chain holds the walked records in order; Next is the revisited record.
type DelegationRing struct {
	Chain []*vote.Vote
	Next  *vote.Vote
}

// BestRings reports the top-potential candidate set and the runner-up.
// Members groups the set by actual ring; isolated candidates appear as
// one-member groups.
type BestRings struct {
	Members      [][]*vote.Vote
	Votes        uint64
	RunnerUp     *vote.Vote
	RunnerUpVote uint64
}

// RingScore pairs a best-ring member with its solo score: the votes the
// member would hold if every other member of the set abstained.
type RingScore struct {
	Candidate *vote.Vote
	Score     uint64
}

// BestOfRing reports the solo scores of the best-ring members and the
// member(s) holding the maximum.
type BestOfRing struct {
	Scores  []RingScore
	Winners []*vote.Vote
}

// PatronReason classifies the outcome of considering one potential patron.
type PatronReason int

const (
	// PatronLoopCandidate: the predecessor is part of the best ring.
	PatronLoopCandidate PatronReason = iota
	// PatronNotWilling: the predecessor is not a willing candidate.
	PatronNotWilling
	// PatronNoMajority: twice the predecessor's potential does not exceed
	// the current tentative winner's potential plus that candidate's own
	// anonymous votes. The reference is recomputed for each promoted patron;
	// the solo score of the first tentative winner is not used.
	PatronNoMajority
	// PatronBehindRunnerUp: the predecessor cannot beat the best candidate
	// outside the ring.
	PatronBehindRunnerUp
	// PatronFound: the predecessor is the patron.
	PatronFound
)

// PatronSelection reports one patron-candidacy decision.
type PatronSelection struct {
	Candidate      *vote.Vote
	CandidateVotes uint64
	Patron         *vote.Vote
	PatronVotes    uint64
	Reason         PatronReason
	// Mark is the vote count the patron had to exceed (majority reference
	// or runner-up potential, whichever rejected them; 0 when found).
	Mark uint64
}

// TieBreakEntry pairs a tied candidate with its Blake2b-512 digest.
type TieBreakEntry struct {
	Candidate *vote.Vote
	Digest    [64]byte
}

// TieBreak reports a deterministic hash tie-break. Tied is ordered by
// digest; the first entry is the final winner.
type TieBreak struct {
	Votes uint64
	Tied  []TieBreakEntry
}

// Winner reports the final outcome of a resolution.
type Winner struct {
	Candidate *vote.Vote
	Votes     uint64
}
