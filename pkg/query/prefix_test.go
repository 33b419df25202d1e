package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefixValidation(t *testing.T) {
	tests := []struct {
		name            string
		prefix          string
		caseInsensitive bool
		wantErr         error
	}{
		{"valid prefix", "1Lucky", false, nil},
		{"empty prefix", "", false, ErrEmptyPrefix},
		{"zero is not base58", "1Luck0", false, ErrInvalidPrefix},
		{"capital O is not base58", "1OK", false, ErrInvalidPrefix},
		{"lowercase l is not base58", "1lucky", false, ErrInvalidPrefix},
		{"capital I is not base58", "1Ice", false, ErrInvalidPrefix},
		{"lowercase l allowed when folding", "1lucky", true, nil},
		{"zero invalid in either case", "1luck0", true, ErrInvalidPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewPrefixWithFlags(tt.prefix, true, false, false, tt.caseInsensitive)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.prefix, q.Prefix())
			assert.Equal(t, tt.caseInsensitive, q.IsCaseInsensitive())
		})
	}
}

func TestPrefixQueryMatching(t *testing.T) {
	q, err := NewPrefix("1Lucky", true)
	require.NoError(t, err)

	assert.True(t, q.MatchesAddress("1LuckyAddressXYZ"))
	assert.False(t, q.MatchesAddress("x1LuckyAddress"), "prefix is anchored at the start")
	assert.False(t, q.MatchesAddress("1luckyAddress"), "case sensitive by default")

	folded, err := NewPrefixWithFlags("1lucky", true, false, false, true)
	require.NoError(t, err)
	assert.True(t, folded.MatchesAddress("1LuCkYAddress"))
	assert.True(t, folded.MatchesAddress("1luckyAddress"))
	assert.False(t, folded.MatchesAddress("2luckyAddress"))
}

// A PrefixQuery is a Query underneath: it participates in equality,
// ordering and the set like any other query.
func TestPrefixQueryIsAQuery(t *testing.T) {
	p, err := NewPrefix("1Lucky", true)
	require.NoError(t, err)

	plain := New(compilePrefixPattern("1Lucky", false), true)
	assert.True(t, p.Query.Equal(plain))
	assert.Zero(t, p.Query.Compare(plain))
	assert.Equal(t, "^1Lucky", p.Pattern().String())
}
