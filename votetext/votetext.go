// Package votetext parses the electorium text input format.
//
// One record per non-blank line, three whitespace-separated fields:
//
//	VOTER VOTES VOTE_FOR
//
//   - VOTER is the identity (no embedded whitespace).
//   - VOTES is a non-negative decimal integer counting only anonymous votes;
//     delegated votes are implied by the graph and must not be double-counted.
//   - VOTE_FOR is another identity, or absent to abstain.
//
// Lines whose first non-whitespace character is '#' are comments.
//
// Identities beginning with the voter prefix (default "voter") parse as
// unwilling records: they relay votes but cannot win. Everything else is a
// willing candidate. Override with WithVoterPrefix.
//
// Errors:
//
//   - ErrMalformedLine  for a missing field, an extra field, or a VOTES
//     value that is not a non-negative decimal integer. The error wraps the
//     offending line number.
package votetext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/electorium/vote"
)

// ErrMalformedLine indicates a line that does not match VOTER VOTES VOTE_FOR.
var ErrMalformedLine = errors.New("votetext: malformed line")

// Option configures parsing. Use with Parse(r, opts...).
type Option func(*ParseOptions)

// ParseOptions holds configurable parameters for Parse.
type ParseOptions struct {
	// VoterPrefix marks unwilling records: identities beginning with it
	// relay votes but cannot be elected. Empty disables the convention and
	// every record parses as a willing candidate.
	VoterPrefix string
}

// DefaultOptions returns the ParseOptions used when none are given.
func DefaultOptions() ParseOptions {
	return ParseOptions{VoterPrefix: "voter"}
}

// WithVoterPrefix returns an Option that replaces the unwilling-identity
// prefix. Pass the empty string to treat every record as willing.
func WithVoterPrefix(prefix string) Option {
	return func(o *ParseOptions) {
		o.VoterPrefix = prefix
	}
}

// Parse reads the text format and returns the election records in input
// order. It does not validate identities for uniqueness; the resolver does.
func Parse(r io.Reader, opts ...Option) ([]vote.Vote, error) {
	popts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&popts)
	}

	var out []vote.Vote
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w %d: want VOTER VOTES [VOTE_FOR], got %d field(s)",
				ErrMalformedLine, lineNo, len(fields))
		}
		votes, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %d: votes %q: %v", ErrMalformedLine, lineNo, fields[1], err)
		}
		v := vote.Vote{
			VoterID:          fields[0],
			Votes:            votes,
			WillingCandidate: popts.VoterPrefix == "" || !strings.HasPrefix(fields[0], popts.VoterPrefix),
		}
		if len(fields) == 3 {
			v.VoteFor = fields[2]
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("votetext: read: %w", err)
	}

	return out, nil
}
