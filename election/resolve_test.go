// Package election_test contains unit tests for the delegated-vote resolver.
// These tests cover direct delegation, abstention-only elections, delegation
// rings, unwilling relays, validation, and the empty-election edge cases.
package election_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/electorium/election"
	"github.com/katalvlaran/electorium/vote"
)

// candidate builds a willing-candidate record.
func candidate(id, voteFor string, votes uint64) vote.Vote {
	return vote.Vote{VoterID: id, VoteFor: voteFor, Votes: votes, WillingCandidate: true}
}

// relay builds an unwilling record: it delegates weight but cannot win.
func relay(id, voteFor string, votes uint64) vote.Vote {
	return vote.Vote{VoterID: id, VoteFor: voteFor, Votes: votes}
}

// TestResolve_DirectDelegation verifies that delegated weight accumulates on
// the target: B and C both delegate to A, so A holds everything.
func TestResolve_DirectDelegation(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "", 2),
		candidate("B", "A", 3),
		candidate("C", "A", 4),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "A", res.Winner.VoterID)
	assert.Equal(t, 0, res.Index)
	assert.Equal(t, uint64(9), res.Votes)
}

// TestResolve_AllAbstain verifies that with no delegation at all the largest
// anonymous weight wins outright.
func TestResolve_AllAbstain(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "", 5),
		candidate("B", "", 3),
		candidate("C", "", 4),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "A", res.Winner.VoterID)
	assert.Equal(t, uint64(5), res.Votes)
}

// TestResolve_Ranking verifies the ranking lists every willing candidate by
// descending potential, with the winner's entry carrying the winning total.
func TestResolve_Ranking(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "", 2),
		candidate("B", "A", 3),
		candidate("C", "A", 4),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.Len(t, res.Ranking, 3)
	assert.Equal(t, election.Rank{Index: 0, Votes: 9}, res.Ranking[0])
	assert.Equal(t, election.Rank{Index: 2, Votes: 4}, res.Ranking[1])
	assert.Equal(t, election.Rank{Index: 1, Votes: 3}, res.Ranking[2])
}

// TestResolve_TwoRing verifies that a two-member delegation ring shares its
// total and that the hash tie-break settles the tied solo scores.
func TestResolve_TwoRing(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "B", 10),
		candidate("B", "A", 10),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "B", res.Winner.VoterID)
	assert.Equal(t, 1, res.Index)
	assert.Equal(t, uint64(20), res.Votes)
}

// TestResolve_UnwillingTarget verifies that a candidate delegating to an
// unwilling leader wins through their own potential: voter#0 cannot be elected
// even though all weight ends at voter#0.
func TestResolve_UnwillingTarget(t *testing.T) {
	votes := []vote.Vote{
		relay("voter#0", "", 0),
		candidate("P", "voter#0", 10),
		candidate("X", "", 3),
		candidate("Y", "", 2),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "P", res.Winner.VoterID)
	assert.Equal(t, uint64(10), res.Votes)
}

// TestResolve_WillingTargetSharesTotal verifies the solo comparison between a
// willing target and its sole supporter: all of W's potential arrived through
// P, so P holds the solo majority and wins.
func TestResolve_WillingTargetSharesTotal(t *testing.T) {
	votes := []vote.Vote{
		candidate("W", "", 0),
		candidate("P", "W", 6),
		candidate("X", "", 5),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "P", res.Winner.VoterID)
	assert.Equal(t, uint64(6), res.Votes)
}

// TestResolve_OutsiderBeatsPair verifies that an independent candidate above
// the delegating pair wins on raw potential.
func TestResolve_OutsiderBeatsPair(t *testing.T) {
	votes := []vote.Vote{
		candidate("W", "", 0),
		candidate("P", "W", 6),
		candidate("X", "", 7),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "X", res.Winner.VoterID)
	assert.Equal(t, uint64(7), res.Votes)
}

// TestResolve_Empty verifies the no-input edge case: no winner, no error.
func TestResolve_Empty(t *testing.T) {
	res, err := election.Resolve(nil)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Nil(t, res.Winner)
	assert.Equal(t, -1, res.Index)
	assert.Empty(t, res.Ranking)
}

// TestResolve_NoWillingCandidate verifies that an election of pure relays
// produces the empty outcome rather than an error.
func TestResolve_NoWillingCandidate(t *testing.T) {
	votes := []vote.Vote{
		relay("voter#0", "voter#1", 3),
		relay("voter#1", "", 2),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, -1, res.Index)
}

// TestResolve_DanglingTarget verifies that voting for a nonexistent identity
// is an abstention, not an error.
func TestResolve_DanglingTarget(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "Z", 1),
		candidate("B", "A", 1),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "A", res.Winner.VoterID)
	assert.Equal(t, uint64(2), res.Votes)
}

// TestResolve_SelfVote verifies that a self-referential delegation resolves
// to abstention and the candidate can still win alone.
func TestResolve_SelfVote(t *testing.T) {
	votes := []vote.Vote{candidate("Alice", "Alice", 1)}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "Alice", res.Winner.VoterID)
	assert.Equal(t, uint64(1), res.Votes)
}

// TestResolve_SingleRelayDangling verifies that one relay voting into the
// void yields no winner.
func TestResolve_SingleRelayDangling(t *testing.T) {
	votes := []vote.Vote{relay("voter#0", "ghost", 1)}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

// TestResolve_DuplicateVoter verifies that validation rejects a repeated
// identity with the sentinel error.
func TestResolve_DuplicateVoter(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "", 2),
		candidate("A", "", 3),
	}
	res, err := election.Resolve(votes)
	require.ErrorIs(t, err, vote.ErrDuplicateVoter)
	assert.Nil(t, res)
}

// TestResolve_WithoutValidation verifies the relaxed duplicate behavior: the
// later record wins the identity mapping, both records keep their weight.
func TestResolve_WithoutValidation(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "", 2),
		candidate("A", "", 3),
		candidate("B", "A", 1),
	}
	res, err := election.Resolve(votes, election.WithoutValidation())
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, 1, res.Index, "the later duplicate should receive B's delegation")
	assert.Equal(t, uint64(4), res.Votes)
}

// TestResolve_MultiRingTie verifies the outcome when the top potential spans
// two distinct rings: the unique solo leader wins and patron promotion is
// not consulted.
func TestResolve_MultiRingTie(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "B", 6),
		candidate("B", "A", 4),
		candidate("C", "D", 5),
		candidate("D", "C", 5),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "A", res.Winner.VoterID)
	assert.Equal(t, uint64(10), res.Votes)
}

// TestResolve_LongChain verifies patron promotion along a unanimous chain:
// every link upstream of the terminus supplies a strict majority of its
// successor until D, whose 2 votes no longer clear C's 3 plus C's own 1.
func TestResolve_LongChain(t *testing.T) {
	votes := []vote.Vote{
		candidate("A", "", 1),
		candidate("B", "A", 1),
		candidate("C", "B", 1),
		candidate("D", "C", 1),
		candidate("E", "D", 1),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "C", res.Winner.VoterID)
	assert.Equal(t, uint64(3), res.Votes)
}
