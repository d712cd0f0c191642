package biject

import "fmt"

// numeralCodec converts non-negative integers to and from positional notation
// over a caller-supplied alphabet.
type numeralCodec struct {
	alpha     *alphabet
	minLength int
}

// NumeralOption configures a numeral codec at construction.
type NumeralOption func(*numeralCodec)

// WithMinLength left-pads encoded numerals with the alphabet's first symbol
// until they are at least n symbols long. Padding never truncates: values
// needing more digits than n encode at their natural length.
func WithMinLength(n int) NumeralOption {
	return func(c *numeralCodec) {
		c.minLength = n
	}
}

// Numeral returns a codec between uint64 and positional notation in base
// len(alphabet), using the alphabet's symbols as digits, most significant
// first. Zero encodes to the alphabet's first symbol.
//
// The alphabet must contain at least two distinct symbols, each a single
// code point in 0-255. Construction fails on any violation.
func Numeral(symbols string, opts ...NumeralOption) (Codec[uint64, string], error) {
	alpha, err := newAlphabet(symbols)
	if err != nil {
		return nil, err
	}

	c := &numeralCodec{alpha: alpha, minLength: 1}
	for _, opt := range opts {
		opt(c)
	}
	if c.minLength < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMinLength, c.minLength)
	}

	emitCodecCreated("numeral", len(symbols))
	return c, nil
}

func (c *numeralCodec) Encode(n uint64) (string, error) {
	base := c.alpha.base()

	// A uint64 needs at most 64 digits in base 2.
	var buf [64]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = c.alpha.symbol(n % base)
		n /= base
	}
	if pos == len(buf) {
		pos--
		buf[pos] = c.alpha.zero()
	}

	digits := buf[pos:]
	if len(digits) >= c.minLength {
		return string(digits), nil
	}

	out := make([]byte, c.minLength)
	fill := c.minLength - len(digits)
	for i := 0; i < fill; i++ {
		out[i] = c.alpha.zero()
	}
	copy(out[fill:], digits)
	return string(out), nil
}

func (c *numeralCodec) Decode(s string) (uint64, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	base := c.alpha.base()
	var n uint64
	for i := 0; i < len(s); i++ {
		d, err := c.alpha.digit(s[i], i)
		if err != nil {
			return 0, err
		}

		// Check for overflow before multiply and add.
		if n > (^uint64(0)-d)/base {
			return 0, fmt.Errorf("%w: numeral %q", ErrOverflow, s)
		}
		n = n*base + d
	}
	return n, nil
}
