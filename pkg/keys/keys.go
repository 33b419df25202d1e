// Package keys defines the key-provider contract consumed by the query
// model, together with a secp256k1 implementation. The query side never
// generates or hashes key material itself; it asks a Key to render an
// address under a given set of chain parameters and matches the result.
package keys

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// Key is the contract between the query model and a key provider.
//
// A Key carries a public key in either compressed or uncompressed form.
// ToCompressed and ToDecompressed return the alternate view without
// mutating the receiver, so a shared Key can be re-rendered under both
// encodings. Rendering is a pure function of the key material and the
// chain parameters.
type Key interface {
	// ToCompressed returns a view of the key that serializes its public
	// key in compressed form.
	ToCompressed() Key

	// ToDecompressed returns a view of the key that serializes its public
	// key in uncompressed form.
	ToDecompressed() Key

	// PublicKeyHash returns the 20-byte hash160 of the serialized public
	// key. The hash depends on the current compression view.
	PublicKeyHash() []byte

	// AddressString renders the pay-to-pubkey-hash address for this key
	// under the given chain parameters.
	AddressString(params *chaincfg.Params) string

	// ScriptHashAddressString renders a script-hash-style address built
	// directly from this key's public-key hash under the given chain
	// parameters.
	ScriptHashAddressString(params *chaincfg.Params) string
}
