package cryptography
import (
	"fmt"
	"errors"
	"runtime"
	"crypto/rand"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var (
	ErrInvalidEnvelope = errors.New("invalid encrypted payload")
	ErrAuthenticationFailed = errors.New("authentication failed, wrong password?")
)

// derive encryption key from password. also used for local configuration storage
func DeriveKey( password, saltBytes []byte ) []byte {
	threads := uint8(runtime.NumCPU())
	return argon2.Key( password, saltBytes, KdfTime, KdfMemory, threads, SymKeySize )
}

// generate a random amount of bytes
func GenRandom( size uint ) ([]byte, error) {
	if size == 0 {
		return nil, fmt.Errorf("GenRandom: Invalid size of random data")
	}
	data := make( []byte, size )
	if _, err := rand.Read( data ); err != nil {
		return nil, err
	}
	return data, nil
}

// chacha20poly1305 encryption+authentication with a raw key.
// output layout: nonce || ciphertext+tag
func Encrypt( data, key []byte ) ([]byte, error) {

	if len(data) == 0 {
		return nil, nil
	}
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}

	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce := make( []byte, NonceSize )
	if _, err := rand.Read( nonce ); err != nil {
		return nil, err
	}

	ct := aead.Seal( nil, nonce, data, nil )
	return append( nonce, ct... ), nil
}

func Decrypt( data, key []byte ) ([]byte, error) {

	if len(data) == 0 {
		return nil, nil
	}
	if len(key) != SymKeySize {
		return nil, fmt.Errorf("Invalid key")
	}
	if len(data) < NonceSize {
		return nil, fmt.Errorf("Invalid length of data")
	}

	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open( nil, data[:NonceSize], data[NonceSize:], nil )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	return pt, nil
}

/*
 * password-based envelope used for embedded payloads.
 * layout: salt(16) || nonce(12) || ciphertext+tag.
 * the codec never looks inside, it carries the blob as ordinary bytes.
 */
func EncryptWithPassword( message []byte, password string ) ([]byte, error) {

	salt, err := GenRandom( SaltSize )
	if err != nil {
		return nil, err
	}
	key := DeriveKey( []byte(password), salt )

	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	nonce := make( []byte, NonceSize )
	if _, err := rand.Read( nonce ); err != nil {
		return nil, err
	}

	ct := aead.Seal( nil, nonce, message, nil )
	blob := make( []byte, 0, EnvelopeOverhead + len(ct) )
	blob = append( blob, salt... )
	blob = append( blob, nonce... )
	blob = append( blob, ct... )
	return blob, nil
}

// on failure no partially decrypted data is ever returned
func DecryptWithPassword( blob []byte, password string ) ([]byte, error) {

	if len(blob) < EnvelopeOverhead {
		return nil, fmt.Errorf("%w ( %d bytes )", ErrInvalidEnvelope, len(blob) )
	}
	salt := blob[:SaltSize]
	nonce := blob[SaltSize:EnvelopeOverhead]
	ct := blob[EnvelopeOverhead:]

	key := DeriveKey( []byte(password), salt )
	aead, err := chacha20poly1305.New( key )
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open( nil, nonce, ct, nil )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	return pt, nil
}
