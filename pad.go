package biject

import "fmt"

// padSide selects which end of the string receives the fill pattern.
type padSide int

const (
	padStart padSide = iota
	padEnd
)

// padCodec pads strings to a fixed length with a repeating fill pattern and
// strips the pattern on decode. The pattern is aligned to absolute string
// positions (character at index i is fill[i mod len(fill)]), so encode and
// decode share one alignment rule in both variants.
type padCodec struct {
	maxLength int
	fill      string
	side      padSide
}

// PadStart returns a codec that prefixes the fill pattern, truncated on the
// final repetition as needed, until the string is maxLength long. Strings
// already at or beyond maxLength pass through unchanged; padding never
// truncates content.
//
// Decode walks from the start, stopping at the first position i where the
// input differs from fill[i mod len(fill)]; everything from there on is the
// content. If the entire string matches the pattern and its length is an
// exact multiple of the pattern length, decode returns "": the string is
// assumed to be pure padding rather than content that happens to equal the
// pattern. This loses information for that one boundary case. The resolution
// is deliberate and deterministic; callers needing to round-trip such
// content must avoid fill patterns that can collide with it.
func PadStart(maxLength int, fill string) (Codec[string, string], error) {
	return newPadCodec(maxLength, fill, padStart)
}

// PadEnd is PadStart with the fill pattern appended instead of prefixed and
// stripped from the end on decode. The same ambiguity resolution applies.
func PadEnd(maxLength int, fill string) (Codec[string, string], error) {
	return newPadCodec(maxLength, fill, padEnd)
}

func newPadCodec(maxLength int, fill string, side padSide) (Codec[string, string], error) {
	if maxLength < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxLength, maxLength)
	}
	if fill == "" {
		return nil, ErrEmptyFill
	}
	emitCodecCreated("pad", maxLength)
	return &padCodec{maxLength: maxLength, fill: fill, side: side}, nil
}

func (c *padCodec) Encode(s string) (string, error) {
	if len(s) >= c.maxLength {
		return s, nil
	}

	out := make([]byte, c.maxLength)
	if c.side == padStart {
		pad := c.maxLength - len(s)
		for i := 0; i < pad; i++ {
			out[i] = c.fill[i%len(c.fill)]
		}
		copy(out[pad:], s)
	} else {
		copy(out, s)
		for i := len(s); i < c.maxLength; i++ {
			out[i] = c.fill[i%len(c.fill)]
		}
	}
	return string(out), nil
}

func (c *padCodec) Decode(s string) (string, error) {
	if c.side == padStart {
		i := 0
		for i < len(s) && s[i] == c.fill[i%len(c.fill)] {
			i++
		}
		if i == len(s) && len(s)%len(c.fill) == 0 {
			// Pure padding decodes to empty.
			return "", nil
		}
		return s[i:], nil
	}

	i := len(s)
	for i > 0 && s[i-1] == c.fill[(i-1)%len(c.fill)] {
		i--
	}
	if i == 0 && len(s)%len(c.fill) == 0 {
		// Pure padding decodes to empty.
		return "", nil
	}
	return s[:i], nil
}
