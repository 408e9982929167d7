package election_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/electorium/election"
	"github.com/katalvlaran/electorium/vote"
)

// TestPatron_RingHoldsAgainstMinority verifies that a ring member keeps the
// win when the strongest outside supporter falls short of a strict majority:
// Charlie's 5 delegated votes are exactly half of Alice's 9 plus her own 1.
func TestPatron_RingHoldsAgainstMinority(t *testing.T) {
	votes := []vote.Vote{
		candidate("Alice", "Bob", 1),
		candidate("Bob", "Alice", 1),
		candidate("Charlie", "Alice", 1),
		relay("voter#0", "Bob", 2),
		relay("voter#1", "Charlie", 4),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "Alice", res.Winner.VoterID)
	assert.Equal(t, uint64(9), res.Votes)
}

// TestPatron_Promotion verifies the basic promotion: Charlie supplies 5 of
// Alice's 8-vote total, a strict majority even after Alice's own ballot is
// counted against him, so Charlie displaces her.
func TestPatron_Promotion(t *testing.T) {
	votes := []vote.Vote{
		candidate("Alice", "Bob", 1),
		candidate("Bob", "Alice", 1),
		candidate("Charlie", "Alice", 1),
		relay("voter#0", "Bob", 1),
		relay("voter#1", "Charlie", 4),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "Charlie", res.Winner.VoterID)
	assert.Equal(t, 2, res.Index)
	assert.Equal(t, uint64(5), res.Votes)
}

// TestPatron_Recursion verifies that promotion walks the whole supporter
// chain: Charlie displaces Alice, Dave displaces Charlie, Ernist displaces
// Dave, and Ernist's own supporters end the recursion.
func TestPatron_Recursion(t *testing.T) {
	votes := []vote.Vote{
		candidate("Alice", "Bob", 1),
		candidate("Bob", "Alice", 1),
		candidate("Charlie", "Alice", 1),
		candidate("Dave", "Charlie", 1),
		candidate("Ernist", "Dave", 1),
		relay("voter#0", "Bob", 1),
		relay("voter#1", "Ernist", 4),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "Ernist", res.Winner.VoterID)
	assert.Equal(t, uint64(5), res.Votes)
}

// TestPatron_BlockedByRunnerUpTie verifies the runner-up gate: Charlie holds
// a strict majority of Alice's total, but Dana matches his 5 votes, so the
// runner-up spot is tied and no promotion happens.
func TestPatron_BlockedByRunnerUpTie(t *testing.T) {
	votes := []vote.Vote{
		candidate("Alice", "Bob", 1),
		candidate("Bob", "Alice", 1),
		candidate("Charlie", "Alice", 1),
		relay("voter#0", "Charlie", 4),
		candidate("Dana", "", 5),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "Alice", res.Winner.VoterID)
	assert.Equal(t, uint64(7), res.Votes)
}

// TestPatron_UnwillingSupporterSkipped verifies that an unwilling record can
// never be promoted no matter how much weight it relays.
func TestPatron_UnwillingSupporterSkipped(t *testing.T) {
	votes := []vote.Vote{
		candidate("Alice", "", 1),
		relay("voter#0", "Alice", 100),
	}
	res, err := election.Resolve(votes)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, "Alice", res.Winner.VoterID)
	assert.Equal(t, uint64(101), res.Votes)
}
