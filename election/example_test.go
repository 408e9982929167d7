package election_test

import (
	"fmt"

	"github.com/katalvlaran/electorium/election"
	"github.com/katalvlaran/electorium/vote"
)

// ExampleResolve demonstrates a small delegated election: Bob and Charlie
// both delegate to Alice, so she wins with the combined weight.
func ExampleResolve() {
	votes := []vote.Vote{
		{VoterID: "Alice", Votes: 2, WillingCandidate: true},
		{VoterID: "Bob", VoteFor: "Alice", Votes: 3, WillingCandidate: true},
		{VoterID: "Charlie", VoteFor: "Alice", Votes: 4, WillingCandidate: true},
	}

	res, err := election.Resolve(votes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s wins with %d votes\n", res.Winner.VoterID, res.Votes)
	// Output:
	// Alice wins with 9 votes
}

// ExampleResolve_patron shows a supporter overtaking the delegation ring they
// voted into: Charlie supplies a strict majority of Alice's total, so the
// election promotes him over the Alice/Bob ring.
func ExampleResolve_patron() {
	votes := []vote.Vote{
		{VoterID: "Alice", VoteFor: "Bob", Votes: 1, WillingCandidate: true},
		{VoterID: "Bob", VoteFor: "Alice", Votes: 1, WillingCandidate: true},
		{VoterID: "Charlie", VoteFor: "Alice", Votes: 1, WillingCandidate: true},
		{VoterID: "voter#0", VoteFor: "Bob", Votes: 1},
		{VoterID: "voter#1", VoteFor: "Charlie", Votes: 4},
	}

	res, err := election.Resolve(votes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%s wins with %d votes\n", res.Winner.VoterID, res.Votes)
	// Output:
	// Charlie wins with 5 votes
}

// ExampleResult_Empty shows the no-winner outcome: relays alone cannot elect
// anyone, and that is not an error.
func ExampleResult_Empty() {
	votes := []vote.Vote{
		{VoterID: "voter#0", VoteFor: "voter#1", Votes: 3},
		{VoterID: "voter#1", Votes: 2},
	}

	res, err := election.Resolve(votes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("no winner:", res.Empty())
	// Output:
	// no winner: true
}
