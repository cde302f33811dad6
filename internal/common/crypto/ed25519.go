// Package crypto verifies detached Ed25519 signatures produced by wallets.
//
// Addresses are base58-encoded Ed25519 public keys; signatures travel as
// standard base64. Malformed input of either kind is a verification failure,
// not a separate error class.
package crypto

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/mr-tron/base58"
)

const addressKeyLength = ed25519.PublicKeySize

// DecodeAddress decodes a wallet address into its Ed25519 public key.
func DecodeAddress(address string) (ed25519.PublicKey, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("invalid address encoding: %w", err)
	}
	if len(raw) != addressKeyLength {
		return nil, fmt.Errorf("address must decode to %d bytes, got %d", addressKeyLength, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// VerifyDetached reports whether sigB64 is a valid detached signature over
// msg by pub. A signature that fails to decode, or has the wrong length,
// simply fails verification.
func VerifyDetached(msg []byte, sigB64 string, pub ed25519.PublicKey) bool {
	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return false
	}
	if len(sig) != ed25519.SignatureSize || len(pub) != addressKeyLength {
		return false
	}
	return ed25519.Verify(pub, msg, sig)
}

// VerifyByAddress decodes address and verifies sigB64 over msg against it.
func VerifyByAddress(msg []byte, sigB64, address string) bool {
	pub, err := DecodeAddress(address)
	if err != nil {
		return false
	}
	return VerifyDetached(msg, sigB64, pub)
}
