// Package query implements the match-and-prioritize model that drives a
// vanity address search: a Query decides whether a rendered address
// satisfies a regular expression, and queries order among themselves so a
// scheduler can evaluate the cheapest ones first. The package holds pure
// decision logic only; key material and address encoding live behind the
// keys contract.
package query

import (
	"hash/fnv"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/Amr-9/VanityQuery/pkg/keys"
	"github.com/Amr-9/VanityQuery/pkg/netparams"
)

// config is the mutable part of a Query, kept in a single immutable
// snapshot so a match never observes a half-applied reconfiguration.
// Mutators copy-and-swap; Matches loads it exactly once.
type config struct {
	compressed    bool
	findUnlimited bool
	searchP2SH    bool
	netParams     *chaincfg.Params // nil means no override installed
}

// Query matches rendered addresses against a regular expression using
// find-anywhere semantics and provides the priority ordering a scheduler
// uses to sequence evaluation.
//
// The pattern is fixed at construction. The remaining configuration
// (compression, find-unlimited, network override) may be adjusted through
// the setters; Matches is safe to call concurrently with them from any
// number of goroutines. The zero value is not usable; construct with New
// or NewWithFlags.
type Query struct {
	pattern *regexp.Regexp
	cfg     atomic.Pointer[config]
}

// New creates a Query for the given pattern. Script-hash search and
// find-unlimited default to false and no network override is installed.
func New(pattern *regexp.Regexp, compressed bool) *Query {
	return NewWithFlags(pattern, compressed, false, false)
}

// NewWithFlags creates a fully configured Query.
func NewWithFlags(pattern *regexp.Regexp, compressed, findUnlimited, searchP2SH bool) *Query {
	q := newBare(compressed, findUnlimited, searchP2SH)
	q.pattern = pattern
	return q
}

// newBare creates a Query without a pattern. Restricted variants built on
// top of this must install a pattern before the query is matched.
func newBare(compressed, findUnlimited, searchP2SH bool) *Query {
	q := &Query{}
	q.cfg.Store(&config{
		compressed:    compressed,
		findUnlimited: findUnlimited,
		searchP2SH:    searchP2SH,
	})
	return q
}

// Matches reports whether the address rendered from key satisfies the
// pattern. The address is rendered under the installed network override
// if present, else under params. When the query is not searching
// compressed keys, the key is asked for its decompressed view first; when
// searching script-hash addresses, rendering goes through the key's
// public-key hash instead of the direct pay-to-key form.
//
// Matches is a pure function of the key, the parameters and the current
// configuration. It panics if the query has no pattern or if key or the
// effective parameters are nil; those are caller bugs, not runtime
// conditions.
func (q *Query) Matches(key keys.Key, params *chaincfg.Params) bool {
	if key == nil {
		panic("query: nil key")
	}
	cfg := q.cfg.Load()
	effective := cfg.netParams
	if effective == nil {
		effective = params
	}
	if effective == nil {
		panic("query: nil network parameters and no override installed")
	}
	if !cfg.compressed {
		key = key.ToDecompressed()
	}
	if cfg.searchP2SH {
		return q.MatchesAddress(key.ScriptHashAddressString(effective))
	}
	return q.MatchesAddress(key.AddressString(effective))
}

// MatchesAddress reports whether the pattern matches anywhere within the
// given address string. This is the only point where the pattern is
// evaluated; anchoring, if wanted, belongs in the pattern itself.
func (q *Query) MatchesAddress(address string) bool {
	if q.pattern == nil {
		panic("query: no pattern installed")
	}
	return q.pattern.MatchString(address)
}

// Pattern returns the compiled pattern, or nil if none is installed.
func (q *Query) Pattern() *regexp.Regexp {
	return q.pattern
}

// IsCompressed reports whether this query evaluates compressed-key
// addresses.
func (q *Query) IsCompressed() bool {
	return q.cfg.Load().compressed
}

// IsFindUnlimited reports whether this query should keep being evaluated
// after a match. The flag is advisory: the query never deactivates
// itself, the scheduler decides what to do with a matched query.
func (q *Query) IsFindUnlimited() bool {
	return q.cfg.Load().findUnlimited
}

// IsP2SH reports whether this query matches script-hash-style addresses.
func (q *Query) IsP2SH() bool {
	return q.cfg.Load().searchP2SH
}

// SetCompression switches between compressed and uncompressed key
// evaluation.
func (q *Query) SetCompression(compressed bool) {
	q.swap(func(c *config) { c.compressed = compressed })
}

// SetFindUnlimited sets the advisory keep-searching flag.
func (q *Query) SetFindUnlimited(findUnlimited bool) {
	q.swap(func(c *config) { c.findUnlimited = findUnlimited })
}

// UpdateNetParams installs a network override. While installed, every
// match renders under it regardless of the parameters passed to Matches.
// Passing nil removes the override.
func (q *Query) UpdateNetParams(params *chaincfg.Params) {
	q.swap(func(c *config) { c.netParams = params })
}

// UpdateNetwork resolves the selector and installs the result as the
// network override.
func (q *Query) UpdateNetwork(network netparams.Network) {
	q.UpdateNetParams(network.Params())
}

// NetParams returns the installed override, or fallback unchanged when no
// override is installed. It never forces a match; callers use it to learn
// which parameters rendering would actually run under.
func (q *Query) NetParams(fallback *chaincfg.Params) *chaincfg.Params {
	if p := q.cfg.Load().netParams; p != nil {
		return p
	}
	return fallback
}

// swap applies fn to a copy of the current configuration and publishes it
// atomically. Concurrent mutators retry rather than overwrite each other.
func (q *Query) swap(fn func(*config)) {
	for {
		old := q.cfg.Load()
		next := *old
		fn(&next)
		if q.cfg.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Signature returns the query's identity signature: a fixed polynomial
// combination of the find-unlimited, compression and script-hash flags
// and a digest of the pattern text (0 when no pattern is installed).
// Equal queries always have equal signatures; the converse may not hold,
// which is why Equal falls back to a structural comparison.
func (q *Query) Signature() uint64 {
	cfg := q.cfg.Load()
	sig := uint64(11)
	sig *= 23 + boolBit(cfg.findUnlimited)
	sig *= 23 + boolBit(cfg.compressed)
	sig *= 23 + boolBit(cfg.searchP2SH)
	sig *= 23 + q.patternSignature()
	return sig
}

// Equal reports whether both queries carry the same pattern text and
// flags. The signature serves as a fast reject; a signature collision
// between structurally different queries never reports equal.
func (q *Query) Equal(other *Query) bool {
	if q == other {
		return true
	}
	if other == nil {
		return false
	}
	if q.Signature() != other.Signature() {
		return false
	}
	cfg, ocfg := q.cfg.Load(), other.cfg.Load()
	return cfg.compressed == ocfg.compressed &&
		cfg.findUnlimited == ocfg.findUnlimited &&
		cfg.searchP2SH == ocfg.searchP2SH &&
		q.patternString() == other.patternString()
}

// Compare orders queries for scheduling priority. Queries with equal
// signatures rank equal. With matching compression flags the pattern
// texts compare lexicographically; otherwise the compressed query sorts
// first, since compressed evaluation is the cheaper one for a scheduler
// to run.
func (q *Query) Compare(other *Query) int {
	if q.Signature() == other.Signature() {
		return 0
	}
	if q.IsCompressed() == other.IsCompressed() {
		return strings.Compare(q.patternString(), other.patternString())
	}
	if q.IsCompressed() {
		return -1
	}
	return 1
}

func (q *Query) patternString() string {
	if q.pattern == nil {
		return ""
	}
	return q.pattern.String()
}

func (q *Query) patternSignature() uint64 {
	if q.pattern == nil {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(q.pattern.String()))
	return h.Sum64()
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
