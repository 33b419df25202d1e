package keys

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) *ECKey {
	t.Helper()
	seed := make([]byte, 32)
	seed[31] = 1
	k, err := FromPrivateKeyBytes(seed)
	require.NoError(t, err)
	return k
}

func TestFromPrivateKeyBytes(t *testing.T) {
	k1 := testKey(t)
	k2 := testKey(t)

	params := &chaincfg.MainNetParams
	assert.Equal(t, k1.AddressString(params), k2.AddressString(params),
		"same key material must render the same address")

	_, err := FromPrivateKeyBytes([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrShortPrivateKey)
}

func TestCompressionViews(t *testing.T) {
	k := testKey(t)
	require.True(t, k.IsCompressed())
	assert.Len(t, k.SerializedPubKey(), 33)

	dec, ok := k.ToDecompressed().(*ECKey)
	require.True(t, ok)
	assert.False(t, dec.IsCompressed())
	assert.Len(t, dec.SerializedPubKey(), 65)
	assert.True(t, k.IsCompressed(), "decompressing returns a view, the original is untouched")

	// Round trip lands on the same serialization.
	back, ok := dec.ToCompressed().(*ECKey)
	require.True(t, ok)
	assert.Equal(t, k.SerializedPubKey(), back.SerializedPubKey())

	params := &chaincfg.MainNetParams
	assert.NotEqual(t, k.AddressString(params), dec.AddressString(params),
		"the two encodings hash to different addresses")
}

func TestPublicKeyHash(t *testing.T) {
	k := testKey(t)

	hash := k.PublicKeyHash()
	assert.Len(t, hash, 20)
	assert.Equal(t, btcutil.Hash160(k.SerializedPubKey()), hash)

	dec := k.ToDecompressed()
	assert.NotEqual(t, hash, dec.PublicKeyHash())
}

func TestAddressRendering(t *testing.T) {
	k := testKey(t)

	tests := []struct {
		name       string
		params     *chaincfg.Params
		wantP2PKH  string // acceptable leading characters
		wantScript byte
	}{
		{"mainnet", &chaincfg.MainNetParams, "1", '3'},
		{"testnet", &chaincfg.TestNet3Params, "mn", '2'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := k.AddressString(tt.params)
			require.NotEmpty(t, addr)
			assert.Contains(t, tt.wantP2PKH, string(addr[0]))

			script := k.ScriptHashAddressString(tt.params)
			require.NotEmpty(t, script)
			assert.Equal(t, tt.wantScript, script[0])
			assert.NotEqual(t, addr, script)
		})
	}

	// A decoded rendering carries exactly the public-key hash.
	decoded, err := btcutil.DecodeAddress(k.AddressString(&chaincfg.MainNetParams), &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, k.PublicKeyHash(), decoded.ScriptAddress())
}

func TestWIF(t *testing.T) {
	k := testKey(t)
	params := &chaincfg.MainNetParams

	encoded, err := k.WIF(params)
	require.NoError(t, err)

	wif, err := btcutil.DecodeWIF(encoded)
	require.NoError(t, err)
	assert.True(t, wif.IsForNet(params))
	assert.True(t, wif.CompressPubKey)
	assert.Equal(t, k.SerializedPubKey(), wif.SerializePubKey())

	pubOnly := FromPublicKey(k.pub, true)
	_, err = pubOnly.WIF(params)
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	k, err := Generate()
	require.NoError(t, err)
	require.True(t, k.IsCompressed())

	addr := k.AddressString(&chaincfg.MainNetParams)
	assert.NotEmpty(t, addr)
	assert.Equal(t, byte('1'), addr[0])
}
