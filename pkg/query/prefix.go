package query

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/mr-tron/base58"
)

var (
	// ErrEmptyPrefix reports a prefix query built from an empty string.
	ErrEmptyPrefix = errors.New("query: empty prefix")
	// ErrInvalidPrefix reports a prefix containing characters that can
	// never appear in a Base58Check address.
	ErrInvalidPrefix = errors.New("query: prefix contains non-Base58 characters")
)

// PrefixQuery is a restricted Query that matches addresses starting with
// a fixed wanted prefix. Unlike the general form it validates its input:
// the prefix must be non-empty and every character must belong to the
// Base58 alphabet, so a query that could never match is rejected at
// construction instead of burning scheduler time.
//
// The prefix is matched against the full rendered address, so it should
// include the leading version character of the target chain (for
// example "1Lucky" on a P2PKH main network address).
type PrefixQuery struct {
	*Query
	prefix          string
	caseInsensitive bool
}

// NewPrefix creates a case-sensitive PrefixQuery. Script-hash search and
// find-unlimited default to false.
func NewPrefix(prefix string, compressed bool) (*PrefixQuery, error) {
	return NewPrefixWithFlags(prefix, compressed, false, false, false)
}

// NewPrefixWithFlags creates a fully configured PrefixQuery. With
// caseInsensitive set, a character is accepted if either of its case
// forms is valid Base58, and matching ignores case.
func NewPrefixWithFlags(prefix string, compressed, findUnlimited, searchP2SH, caseInsensitive bool) (*PrefixQuery, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if bad, ok := invalidBase58Rune(prefix, caseInsensitive); ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, bad)
	}
	q := newBare(compressed, findUnlimited, searchP2SH)
	q.pattern = compilePrefixPattern(prefix, caseInsensitive)
	return &PrefixQuery{
		Query:           q,
		prefix:          prefix,
		caseInsensitive: caseInsensitive,
	}, nil
}

// Prefix returns the wanted address prefix as supplied by the caller.
func (p *PrefixQuery) Prefix() string {
	return p.prefix
}

// IsCaseInsensitive reports whether matching ignores case.
func (p *PrefixQuery) IsCaseInsensitive() bool {
	return p.caseInsensitive
}

// compilePrefixPattern anchors the quoted prefix at the start of the
// address. QuoteMeta output always compiles.
func compilePrefixPattern(prefix string, caseInsensitive bool) *regexp.Regexp {
	pat := "^" + regexp.QuoteMeta(prefix)
	if caseInsensitive {
		pat = "(?i)" + pat
	}
	return regexp.MustCompile(pat)
}

// invalidBase58Rune returns the first rune of prefix that cannot appear
// in a Base58 string, decoding one character at a time. In
// case-insensitive mode a rune passes if either case form decodes (an
// address may satisfy "(?i)l" with "L" even though "l" itself is not in
// the alphabet).
func invalidBase58Rune(prefix string, caseInsensitive bool) (rune, bool) {
	for _, r := range prefix {
		if decodesBase58(r) {
			continue
		}
		if caseInsensitive && decodesBase58(swapCase(r)) {
			continue
		}
		return r, true
	}
	return 0, false
}

func decodesBase58(r rune) bool {
	_, err := base58.Decode(string(r))
	return err == nil
}

func swapCase(r rune) rune {
	if unicode.IsUpper(r) {
		return unicode.ToLower(r)
	}
	return unicode.ToUpper(r)
}
