package keys

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"golang.org/x/crypto/ripemd160"
)

// ErrShortPrivateKey reports private key material shorter than 32 bytes.
var ErrShortPrivateKey = errors.New("keys: private key must be 32 bytes")

// ECKey is a secp256k1 key pair implementing the Key contract.
// The zero value is not usable; construct with Generate,
// FromPrivateKeyBytes or FromPublicKey.
type ECKey struct {
	priv       *btcec.PrivateKey // nil for public-only keys
	pub        *btcec.PublicKey
	compressed bool
}

var _ Key = (*ECKey)(nil)

// Generate creates a new random key pair in compressed form.
func Generate() (*ECKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &ECKey{priv: priv, pub: priv.PubKey(), compressed: true}, nil
}

// FromPrivateKeyBytes builds a key pair from 32 bytes of private key
// material in compressed form. Deterministic: the same bytes always
// produce the same key.
func FromPrivateKeyBytes(b []byte) (*ECKey, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("%w, got %d", ErrShortPrivateKey, len(b))
	}
	priv, pub := btcec.PrivKeyFromBytes(b)
	return &ECKey{priv: priv, pub: pub, compressed: true}, nil
}

// FromPublicKey wraps an existing public key. The result can render
// addresses but cannot export a WIF.
func FromPublicKey(pub *btcec.PublicKey, compressed bool) *ECKey {
	return &ECKey{pub: pub, compressed: compressed}
}

// IsCompressed reports whether this view serializes the public key in
// compressed form.
func (k *ECKey) IsCompressed() bool {
	return k.compressed
}

// ToCompressed returns a compressed view of the same key material.
func (k *ECKey) ToCompressed() Key {
	if k.compressed {
		return k
	}
	return &ECKey{priv: k.priv, pub: k.pub, compressed: true}
}

// ToDecompressed returns an uncompressed view of the same key material.
func (k *ECKey) ToDecompressed() Key {
	if !k.compressed {
		return k
	}
	return &ECKey{priv: k.priv, pub: k.pub, compressed: false}
}

// SerializedPubKey returns the public key bytes in the current
// compression view (33 bytes compressed, 65 uncompressed).
func (k *ECKey) SerializedPubKey() []byte {
	if k.compressed {
		return k.pub.SerializeCompressed()
	}
	return k.pub.SerializeUncompressed()
}

// PublicKeyHash returns hash160 of the serialized public key.
func (k *ECKey) PublicKeyHash() []byte {
	return hash160(k.SerializedPubKey())
}

// AddressString renders the P2PKH address for this key.
func (k *ECKey) AddressString(params *chaincfg.Params) string {
	addr, err := btcutil.NewAddressPubKeyHash(k.PublicKeyHash(), params)
	if err != nil {
		// Only reachable with a non-20-byte hash, which PublicKeyHash
		// cannot produce.
		panic(fmt.Sprintf("keys: P2PKH render failed: %v", err))
	}
	return addr.EncodeAddress()
}

// ScriptHashAddressString renders a P2SH address built directly from the
// public-key hash.
func (k *ECKey) ScriptHashAddressString(params *chaincfg.Params) string {
	addr, err := btcutil.NewAddressScriptHashFromHash(k.PublicKeyHash(), params)
	if err != nil {
		panic(fmt.Sprintf("keys: P2SH render failed: %v", err))
	}
	return addr.EncodeAddress()
}

// WIF exports the private key in wallet import format under the given
// chain parameters, honoring the current compression view. Returns an
// error for public-only keys.
func (k *ECKey) WIF(params *chaincfg.Params) (string, error) {
	if k.priv == nil {
		return "", errors.New("keys: no private key material")
	}
	wif, err := btcutil.NewWIF(k.priv, params, k.compressed)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// hash160 computes RIPEMD160(SHA256(data)).
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	ripemd := ripemd160.New()
	ripemd.Write(sha[:])
	return ripemd.Sum(nil)
}
