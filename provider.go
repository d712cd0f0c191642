package biject

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/hkdf"
)

// NonceSize is the nonce length the AEAD codec prepends to ciphertext.
const NonceSize = 12

// DerivedKeySize is the length of keys produced by Provider.DeriveKey.
const DerivedKeySize = 32

// Provider supplies the cryptographic primitives the AEAD codec delegates
// to: randomness, key derivation, and authenticated encryption. Encrypt and
// Decrypt take a context because a provider may be backed by a remote key
// service; the in-process default never suspends.
//
// Implementations must be safe for concurrent use.
type Provider interface {
	// RandomBytes returns n cryptographically random bytes.
	RandomBytes(n int) ([]byte, error)

	// DeriveKey derives a symmetric key from key material and an optional
	// salt. The same material and salt always derive the same key.
	DeriveKey(material, salt []byte) ([]byte, error)

	// Encrypt seals plaintext under key with the given nonce.
	Encrypt(ctx context.Context, key, nonce, plaintext []byte) ([]byte, error)

	// Decrypt opens ciphertext sealed by Encrypt, failing if the ciphertext
	// or nonce was tampered with.
	Decrypt(ctx context.Context, key, nonce, ciphertext []byte) ([]byte, error)
}

// platformProvider implements Provider with AES-256-GCM, crypto/rand, and
// HKDF-SHA256. It holds only a reference to the platform primitives, no
// mutable state, so concurrent use needs no locking.
type platformProvider struct{}

var (
	defaultOnce     sync.Once
	defaultInstance Provider
)

// DefaultProvider returns the process-wide provider handle, created lazily
// on first use and cached for the process lifetime.
func DefaultProvider() Provider {
	defaultOnce.Do(func() {
		defaultInstance = platformProvider{}
	})
	return defaultInstance
}

func (platformProvider) RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (platformProvider) DeriveKey(material, salt []byte) ([]byte, error) {
	key := make([]byte, DerivedKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, material, salt, nil), key); err != nil {
		return nil, err
	}
	return key, nil
}

func (platformProvider) Encrypt(_ context.Context, key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

func (platformProvider) Decrypt(_ context.Context, key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
