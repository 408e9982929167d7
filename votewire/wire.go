// Package votewire encodes election cases as a compact binary stream for
// byte-buffer harnesses.
//
// One record per 4 bytes:
//
//	[flags][voter][voteFor][votes]
//
//   - flags bit0 set means the record is a willing candidate.
//   - voter and voteFor are wire ids, resolved to identities through the
//     generated 256-entry name table.
//   - voteFor equal to voter encodes an abstention.
//   - votes is the anonymous vote count, 0..255.
//
// A trailing partial record is ignored, which makes Decode total: every byte
// slice decodes to some election. Compile is the inverse direction, turning
// the votetext format into wire records.
package votewire

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/electorium/vote"
	"github.com/katalvlaran/electorium/votetext"
)

const recordSize = 4

// Flag bits of the first record byte.
const (
	flagWilling = 1 << iota
)

// Errors returned by Compile.
var (
	// ErrTooManyVoters indicates more distinct identities than wire ids.
	ErrTooManyVoters = errors.New("votewire: more than 256 distinct voters")
	// ErrVotesOverflow indicates an anonymous count above 255.
	ErrVotesOverflow = errors.New("votewire: votes do not fit in one byte")
)

// Decode turns a byte slice into election records. It never fails: a
// trailing partial record is dropped and every full record is meaningful.
// Identical voter ids in two records decode to duplicate identities; the
// resolver's validation rejects those.
func Decode(data []byte) []vote.Vote {
	n := len(data) / recordSize
	out := make([]vote.Vote, 0, n)
	for i := 0; i < n; i++ {
		rec := data[i*recordSize : (i+1)*recordSize]
		v := vote.Vote{
			VoterID:          Name(rec[1]),
			Votes:            uint64(rec[3]),
			WillingCandidate: rec[0]&flagWilling != 0,
		}
		if rec[2] != rec[1] {
			v.VoteFor = Name(rec[2])
		}
		out = append(out, v)
	}

	return out
}

// Encode writes the wire form of the given records. Identities found in the
// name table keep their table id; unknown identities are assigned unused ids
// descending from 255. Abstentions encode as a self-referencing voteFor.
func Encode(w io.Writer, votes []vote.Vote) error {
	ids, err := assignIDs(votes)
	if err != nil {
		return err
	}

	var rec [recordSize]byte
	for i := range votes {
		v := &votes[i]
		if v.Votes > 255 {
			return fmt.Errorf("%w: voter %q has %d", ErrVotesOverflow, v.VoterID, v.Votes)
		}
		rec[0] = 0
		if v.WillingCandidate {
			rec[0] |= flagWilling
		}
		rec[1] = ids[v.VoterID]
		rec[2] = rec[1]
		if v.VoteFor != "" && v.VoteFor != v.VoterID {
			rec[2] = ids[v.VoteFor]
		}
		rec[3] = byte(v.Votes)
		if _, err = w.Write(rec[:]); err != nil {
			return fmt.Errorf("votewire: write: %w", err)
		}
	}

	return nil
}

// assignIDs maps every identity appearing in the records to a wire id.
// Table identities are pinned to their table slot; the rest take free ids
// from 255 downward, in first-appearance order.
func assignIDs(votes []vote.Vote) (map[string]byte, error) {
	ids := make(map[string]byte, len(votes))
	var taken [256]bool

	claim := func(name string) bool {
		if _, ok := ids[name]; ok || name == "" {
			return true
		}
		if id, ok := idOf(name); ok && !taken[id] {
			ids[name] = id
			taken[id] = true

			return true
		}

		return false
	}
	// 1. Pin every table identity first so a later unknown name cannot
	//    shadow its slot.
	pending := make([]string, 0, len(votes))
	for i := range votes {
		if !claim(votes[i].VoterID) {
			pending = append(pending, votes[i].VoterID)
		}
		if !claim(votes[i].VoteFor) {
			pending = append(pending, votes[i].VoteFor)
		}
	}

	// 2. Unknown identities fill the free slots from the top.
	next := 255
	for _, name := range pending {
		if _, ok := ids[name]; ok {
			continue
		}
		for next >= 0 && taken[next] {
			next--
		}
		if next < 0 {
			return nil, fmt.Errorf("%w (identity %q)", ErrTooManyVoters, name)
		}
		ids[name] = byte(next)
		taken[next] = true
	}

	return ids, nil
}

// Compile reads the votetext format and writes the equivalent wire records.
func Compile(r io.Reader, w io.Writer, opts ...votetext.Option) error {
	votes, err := votetext.Parse(r, opts...)
	if err != nil {
		return err
	}

	return Encode(w, votes)
}

// AppendRecord appends one wire record to dst and returns the extended
// slice. Useful when hand-building cases in tests and harnesses.
func AppendRecord(dst []byte, flags, voter, voteFor, votes byte) []byte {
	return append(dst, flags, voter, voteFor, votes)
}
