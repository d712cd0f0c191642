package biject

import (
	"context"
	"fmt"
	"time"

	"github.com/capitalone/fpe/ff1"
)

// ff1Digits is the digit set the underlying FF1 cipher operates on. Caller
// alphabets are translated to and from this set index-wise.
const ff1Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// fpeCodec adapts an FF1 format-preserving cipher to the Codec contract.
// Output has the same length and alphabet membership as the input; the
// cipher is deterministic, so the codec is a true bijection over conforming
// strings.
type fpeCodec struct {
	cipher    ff1.Cipher
	alpha     *alphabet
	toDigits  [256]byte
	toSymbols [36]byte
	minLen    int
	maxLen    int
}

// FPEOption configures a format-preserving encryption codec at construction.
type FPEOption func(*fpeCodec)

// WithLengthBounds rejects inputs shorter than min or longer than max before
// delegating to the cipher. A max of 0 means unbounded above.
func WithLengthBounds(min, max int) FPEOption {
	return func(c *fpeCodec) {
		c.minLen = min
		c.maxLen = max
	}
}

// FPE returns a codec that encrypts strings drawn from the given alphabet
// while preserving their length and alphabet membership, delegating to the
// FF1 cipher with the given key and tweak.
//
// The alphabet must contain 2 to 36 unique single-byte symbols; the key must
// be 16, 24, or 32 bytes. Cipher failures, including the cipher's own
// minimum-length requirement, surface unmodified.
func FPE(key, tweak []byte, symbols string, opts ...FPEOption) (Codec[string, string], error) {
	alpha, err := newAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	if len(alpha.symbols) > len(ff1Digits) {
		return nil, fmt.Errorf("%w: got %d, max %d", ErrRadixRange, len(alpha.symbols), len(ff1Digits))
	}

	cipher, err := ff1.NewCipher(len(alpha.symbols), len(tweak), key, tweak)
	if err != nil {
		return nil, err
	}

	c := &fpeCodec{cipher: cipher, alpha: alpha}
	for i, s := range alpha.symbols {
		c.toDigits[s] = ff1Digits[i]
		c.toSymbols[i] = s
	}
	for _, opt := range opts {
		opt(c)
	}

	emitCodecCreated("fpe", len(alpha.symbols))
	return c, nil
}

func (c *fpeCodec) Encode(s string) (string, error) {
	start := time.Now()
	digits, err := c.translate(s)
	if err != nil {
		return "", err
	}

	out, err := c.cipher.Encrypt(digits)
	emitStageComplete(context.Background(), "fpe", "encode", len(s), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return c.untranslate(out)
}

func (c *fpeCodec) Decode(s string) (string, error) {
	start := time.Now()
	digits, err := c.translate(s)
	if err != nil {
		return "", err
	}

	out, err := c.cipher.Decrypt(digits)
	emitStageComplete(context.Background(), "fpe", "decode", len(s), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return c.untranslate(out)
}

// translate maps a caller-alphabet string onto the cipher's digit set,
// enforcing alphabet membership and the configured length bounds.
func (c *fpeCodec) translate(s string) (string, error) {
	if len(s) < c.minLen || (c.maxLen > 0 && len(s) > c.maxLen) {
		return "", fmt.Errorf("%w: length %d, bounds [%d, %d]", ErrLengthBounds, len(s), c.minLen, c.maxLen)
	}

	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if c.alpha.index[s[i]] < 0 {
			return "", &SymbolError{Symbol: s[i], Pos: i}
		}
		out[i] = c.toDigits[s[i]]
	}
	return string(out), nil
}

// untranslate maps cipher digits back onto the caller alphabet.
func (c *fpeCodec) untranslate(digits string) (string, error) {
	out := make([]byte, len(digits))
	for i := 0; i < len(digits); i++ {
		v := digitValue(digits[i])
		if v < 0 || v >= len(c.alpha.symbols) {
			return "", &SymbolError{Symbol: digits[i], Pos: i}
		}
		out[i] = c.toSymbols[v]
	}
	return string(out), nil
}

// digitValue inverts ff1Digits without a table.
func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 10
	default:
		return -1
	}
}
