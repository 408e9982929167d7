// Package election implements the delegated-vote winner-selection kernel.
// It turns a slice of vote.Vote records into a single deterministic winner
// (or a well-defined empty outcome when no willing candidate exists).
//
// The resolution is a pure, single-threaded computation in five stages:
//
//  1. Graph build: assign dense ids in input order, resolve each VoteFor
//     to an internal id, and treat dangling or self-referential targets as
//     abstention.
//  2. Potential votes: for every candidate, the votes they would hold
//     after all delegation chains terminate at them (or at their ring).
//     Rings are detected with a three-colour walk; totals are accumulated
//     along the reverse graph in linear time.
//  3. Ring identification: the candidates tied at maximum potential form
//     the best ring (possibly several real rings, or isolated candidates);
//     the next bucket down supplies the runner-up.
//  4. Tentative winner and patrons: each best-ring member is scored as if
//     every other member abstained ("solo" votes); a unique solo leader may
//     then be displaced by its patron: the sole direct predecessor whose
//     potential strictly exceeds half of the leader's potential plus the
//     leader's own anonymous weight, and who beats every candidate ranked
//     below the leader. Patron promotion recurses with both references
//     recomputed for the promoted patron.
//  5. Tie-breaking: ties are settled by the lexicographically smallest
//     Blake2b-512 digest of identity bytes concatenated with the shared
//     potential (8 bytes, little-endian); equal digests fall back to
//     byte order of the identities themselves.
//
// Key properties:
//
//   - Exactly one winner whenever a willing candidate exists
//   - Bit-identical results across runs and platforms
//   - Input order never affects the outcome
//   - All members of a ring share the same potential
//   - potential(c) ≥ anonymous(c) for every willing candidate
//
// Complexity:
//
//   - Time:   O(N log N): linear graph work plus the ranking sort.
//   - Memory: O(N) derived arrays, indexed by dense internal id.
//
// Options:
//
//   - WithIntrospector(is)   attach a typed event stream (see introspect)
//   - WithoutValidation()    skip the duplicate-identity check for inputs
//     that are validated (or intentionally hostile) upstream
//
// Errors:
//
//   - vote.ErrDuplicateVoter  if two records share a VoterID (validation on)
//
// Internal invariant violations (unequal ring potentials, a patron that is
// not a predecessor of the candidate it displaces) panic: a wrong winner
// must never be returned quietly.
package election
