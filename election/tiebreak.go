package election

import (
	"bytes"
	"encoding/binary"
	"sort"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/electorium/introspect"
)

// tieBreakDigest hashes a candidate for deterministic tie-breaking:
// Blake2b-512 over the identity bytes followed by the shared potential as
// 8 little-endian bytes. No internal index or order-dependent field may
// enter the hash, or reordering the input would change winners.
func tieBreakDigest(identity string, potential uint64) [64]byte {
	buf := make([]byte, 0, len(identity)+8)
	buf = append(buf, identity...)
	buf = binary.LittleEndian.AppendUint64(buf, potential)

	return blake2b.Sum512(buf)
}

// tieBreak runs stage S5: among tied candidates, the lexicographically
// smallest digest wins. Distinct identities collide with only negligible
// probability; if they ever do, byte order of the identities themselves is
// the documented secondary key.
func (g *graph) tieBreak(is *introspect.Introspector, tied []int32, potential uint64) int32 {
	entries := make([]introspect.TieBreakEntry, len(tied))
	order := make([]int, len(tied))
	for k, id := range tied {
		entries[k] = introspect.TieBreakEntry{
			Candidate: &g.votes[id],
			Digest:    tieBreakDigest(g.votes[id].VoterID, potential),
		}
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool {
		ea, eb := &entries[order[a]], &entries[order[b]]
		if c := bytes.Compare(ea.Digest[:], eb.Digest[:]); c != 0 {
			return c < 0
		}

		return ea.Candidate.VoterID < eb.Candidate.VoterID
	})

	if is != nil && is.OnTieBreak != nil {
		sorted := make([]introspect.TieBreakEntry, len(order))
		for k, o := range order {
			sorted[k] = entries[o]
		}
		is.EmitTieBreak(introspect.TieBreak{Votes: potential, Tied: sorted})
	}

	return tied[order[0]]
}
