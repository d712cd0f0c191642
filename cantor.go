package biject

import (
	"fmt"
	"math"
	"math/bits"
)

// Pair is an ordered pair of non-negative integers.
type Pair struct {
	X uint64
	Y uint64
}

// cantorCodec maps pairs to single integers via the Cantor pairing function
// pi(x, y) = (x+y)(x+y+1)/2 + y, a bijection between pairs and integers.
// The mapping is not commutative and pi(0, 0) = 0.
type cantorCodec struct{}

// CantorPair returns a codec that bijectively maps an ordered pair of
// non-negative integers to a single non-negative integer.
//
// Encode fails with ErrOverflow when the result does not fit in a uint64;
// Decode is total over uint64.
func CantorPair() Codec[Pair, uint64] {
	emitCodecCreated("cantor", 0)
	return cantorCodec{}
}

// triangular returns s(s+1)/2 with overflow detection. The product is always
// even, so the division is exact.
func triangular(s uint64) (uint64, bool) {
	var hi, lo uint64
	if s%2 == 0 {
		hi, lo = bits.Mul64(s/2, s+1)
	} else {
		hi, lo = bits.Mul64(s, (s+1)/2)
	}
	return lo, hi == 0
}

func (cantorCodec) Encode(p Pair) (uint64, error) {
	s, carry := bits.Add64(p.X, p.Y, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: pair (%d, %d)", ErrOverflow, p.X, p.Y)
	}
	t, ok := triangular(s)
	if !ok {
		return 0, fmt.Errorf("%w: pair (%d, %d)", ErrOverflow, p.X, p.Y)
	}
	z, carry := bits.Add64(t, p.Y, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: pair (%d, %d)", ErrOverflow, p.X, p.Y)
	}
	return z, nil
}

func (cantorCodec) Decode(z uint64) (Pair, error) {
	w := triangularRoot(z)
	t, _ := triangular(w)
	y := z - t
	return Pair{X: w - y, Y: y}, nil
}

// triangularRoot returns the largest w with w(w+1)/2 <= z. A floating-point
// estimate seeds the search and is corrected to the exact integer answer, so
// the inverse stays exact across the full uint64 range.
func triangularRoot(z uint64) uint64 {
	w := uint64((math.Sqrt(8*float64(z)+1) - 1) / 2)

	for {
		t, ok := triangular(w)
		if !ok || t > z {
			w--
			continue
		}
		if next, ok := triangular(w + 1); ok && next <= z {
			w++
			continue
		}
		return w
	}
}

// cantorBatchCodec is the element-wise form of cantorCodec.
type cantorBatchCodec struct {
	scalar cantorCodec
}

// CantorPairs returns the batch form of CantorPair, operating element-wise
// over a slice of pairs and preserving order. A malformed element fails the
// whole call with a BatchError identifying the offending index.
func CantorPairs() Codec[[]Pair, []uint64] {
	emitCodecCreated("cantor-batch", 0)
	return cantorBatchCodec{}
}

func (c cantorBatchCodec) Encode(pairs []Pair) ([]uint64, error) {
	out := make([]uint64, len(pairs))
	for i, p := range pairs {
		z, err := c.scalar.Encode(p)
		if err != nil {
			return nil, newBatchError(i, err)
		}
		out[i] = z
	}
	return out, nil
}

func (c cantorBatchCodec) Decode(zs []uint64) ([]Pair, error) {
	out := make([]Pair, len(zs))
	for i, z := range zs {
		p, err := c.scalar.Decode(z)
		if err != nil {
			return nil, newBatchError(i, err)
		}
		out[i] = p
	}
	return out, nil
}
