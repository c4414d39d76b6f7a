package cryptography
import (
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	SymKeySize = 32
	SaltSize = 16
	NonceSize = chacha20poly1305.NonceSize
	TagSize = 16

	// salt + nonce; anything shorter cannot be a valid envelope
	EnvelopeOverhead = SaltSize + NonceSize

	// argon2 parameters, the draft RFC recommends time=3
	// and memory=32*1024 (32 MB) as sensible numbers.
	KdfTime = 3
	KdfMemory = 32 * 1024
)
