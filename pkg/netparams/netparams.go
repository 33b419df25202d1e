// Package netparams selects the chain parameters that address rendering
// runs under. A Network is a high-level selector that resolves to exactly
// one *chaincfg.Params value; queries and keys treat the resolved value as
// opaque and only pass it through to the renderer.
package netparams

import (
	"github.com/btcsuite/btcd/chaincfg"
)

// Network represents a supported chain selection for address rendering.
type Network int

const (
	MainNet       Network = iota // Bitcoin main network
	TestNet                      // Bitcoin test network (version 3)
	RegressionNet                // Local regression test network
	SimNet                       // Simulation test network
	SigNet                       // Signet test network
)

// String returns the network name.
func (n Network) String() string {
	switch n {
	case MainNet:
		return "MainNet"
	case TestNet:
		return "TestNet"
	case RegressionNet:
		return "RegressionNet"
	case SimNet:
		return "SimNet"
	case SigNet:
		return "SigNet"
	default:
		return "Unknown"
	}
}

// Params resolves the selector to its chain parameters. Every selector
// maps to exactly one parameter set; unknown values resolve to MainNet.
func (n Network) Params() *chaincfg.Params {
	switch n {
	case TestNet:
		return &chaincfg.TestNet3Params
	case RegressionNet:
		return &chaincfg.RegressionNetParams
	case SimNet:
		return &chaincfg.SimNetParams
	case SigNet:
		return &chaincfg.SigNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

// Custom builds chain parameters from raw version bytes. This covers
// altcoin-style chains that reuse Base58Check addressing with different
// address headers. The result is usable for address rendering without
// registering the chain globally.
func Custom(name string, pubKeyHashID, scriptHashID, privateKeyID byte) *chaincfg.Params {
	return &chaincfg.Params{
		Name:             name,
		PubKeyHashAddrID: pubKeyHashID,
		ScriptHashAddrID: scriptHashID,
		PrivateKeyID:     privateKeyID,
	}
}
