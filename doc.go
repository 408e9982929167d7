// Package electorium resolves delegated-vote elections: every candidate may
// both receive votes and delegate their own vote to another candidate, and the
// resolver computes the single winner under pairwise-fair comparison rules.
//
// 🗳 What is electorium?
//
//	A deterministic, pure-computation library that brings together:
//		• Core model: Vote records with opaque identities and anonymous counts
//		• Delegation graphs: out-degree ≤ 1, rings detected in linear time
//		• Potential votes: per-candidate totals after full delegation
//		• Ring resolution: best ring, solo scores, patron promotion
//		• Tie-breaking: Blake2b-512 over identity + potential
//
// ✨ Why choose electorium?
//
//   - Deterministic – same input, same winner, every run, every platform
//   - Introspectable – subscribe to typed events for every decision the
//     resolver makes (delegations, rings, patron selection, tie-breaks)
//   - Pure Go core – dense index-based arrays, no global state
//
// Everything is organized under focused subpackages:
//
//	vote/      : the Vote record and election-level validation
//	election/  : the winner-selection kernel
//	introspect/: typed event stream emitted during resolution
//	votetext/  : the "VOTER VOTES VOTE_FOR" text input format
//	votewire/  : the compact binary case format + text-to-binary compiler
//	fuzzable/  : byte-buffer harness with small signed status codes
//	cmd/       : the electorium command-line tool
//
// Quick ASCII example:
//
//	    C──→A←──B        A abstains, B and C delegate to A:
//	         │           A's potential is anon(A)+anon(B)+anon(C),
//	         ∅           the highest; A wins unless B or C
//	                     qualifies as A's patron.
//
// The election and introspect package docs carry the full election rules,
// the patron discipline, and the event vocabulary.
//
//	go get github.com/katalvlaran/electorium
package electorium
