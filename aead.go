package biject

import (
	"context"
	"fmt"
	"time"
)

// aeadCodec is a thin adapter over a Provider's authenticated encryption.
// Encode draws a fresh random nonce, seals the plaintext, and returns
// nonce||ciphertext; Decode splits the first NonceSize bytes off and opens
// the remainder. Provider failures, including authentication failures on
// decode, surface unmodified.
type aeadCodec struct {
	key      []byte
	provider Provider
}

// AEADOption configures an AEAD codec at construction.
type AEADOption func(*aeadCodec)

// WithProvider substitutes the cryptographic provider backing the codec.
// The default is the process-wide platform provider.
func WithProvider(p Provider) AEADOption {
	return func(c *aeadCodec) {
		c.provider = p
	}
}

// AEAD returns a context-aware codec that authenticates and encrypts byte
// sequences. The key is derived from the given material (text or raw bytes)
// and salt via the provider's key-derivation function; a nil salt is valid.
//
// Each Encode uses a fresh random nonce, so encoding the same plaintext
// twice yields different ciphertexts; Decode is still exact. Decode fails if
// the ciphertext was modified (authentication) or is too short to contain a
// nonce.
func AEAD(material, salt []byte, opts ...AEADOption) (ContextCodec[[]byte, []byte], error) {
	c := &aeadCodec{provider: DefaultProvider()}
	for _, opt := range opts {
		opt(c)
	}

	key, err := c.provider.DeriveKey(material, salt)
	if err != nil {
		return nil, err
	}
	c.key = key

	emitCodecCreated("aead", len(key))
	return c, nil
}

func (c *aeadCodec) Encode(ctx context.Context, plaintext []byte) ([]byte, error) {
	start := time.Now()
	emitStageStart(ctx, "aead", "encode", len(plaintext))

	nonce, err := c.provider.RandomBytes(NonceSize)
	if err != nil {
		emitStageComplete(ctx, "aead", "encode", 0, time.Since(start), err)
		return nil, err
	}

	sealed, err := c.provider.Encrypt(ctx, c.key, nonce, plaintext)
	if err != nil {
		emitStageComplete(ctx, "aead", "encode", 0, time.Since(start), err)
		return nil, err
	}

	out := make([]byte, 0, NonceSize+len(sealed))
	out = append(out, nonce...)
	out = append(out, sealed...)
	emitStageComplete(ctx, "aead", "encode", len(out), time.Since(start), nil)
	return out, nil
}

func (c *aeadCodec) Decode(ctx context.Context, sealed []byte) ([]byte, error) {
	start := time.Now()
	emitStageStart(ctx, "aead", "decode", len(sealed))

	if len(sealed) < NonceSize {
		err := fmt.Errorf("%w: need at least %d bytes, got %d", ErrCiphertextShort, NonceSize, len(sealed))
		emitStageComplete(ctx, "aead", "decode", 0, time.Since(start), err)
		return nil, err
	}

	nonce, ciphertext := sealed[:NonceSize], sealed[NonceSize:]
	plaintext, err := c.provider.Decrypt(ctx, c.key, nonce, ciphertext)
	if err != nil {
		emitStageComplete(ctx, "aead", "decode", 0, time.Since(start), err)
		return nil, err
	}

	emitStageComplete(ctx, "aead", "decode", len(plaintext), time.Since(start), nil)
	return plaintext, nil
}
