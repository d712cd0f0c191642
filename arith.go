package biject

import "math"

// Arithmetic codecs over float64. These are exact inverses algebraically;
// callers composing long chains should expect ordinary floating-point
// rounding, not exact bit equality.

// multiplyCodec scales by a constant factor.
type multiplyCodec struct {
	factor float64
}

// Multiply returns a codec that multiplies by factor on encode and divides
// on decode. A zero factor has no inverse and fails construction.
func Multiply(factor float64) (Codec[float64, float64], error) {
	if factor == 0 {
		return nil, ErrZeroFactor
	}
	emitCodecCreated("multiply", 0)
	return multiplyCodec{factor: factor}, nil
}

func (c multiplyCodec) Encode(v float64) (float64, error) { return v * c.factor, nil }
func (c multiplyCodec) Decode(v float64) (float64, error) { return v / c.factor, nil }

// addCodec shifts by a constant delta.
type addCodec struct {
	delta float64
}

// Add returns a codec that adds delta on encode and subtracts it on decode.
func Add(delta float64) Codec[float64, float64] {
	emitCodecCreated("add", 0)
	return addCodec{delta: delta}
}

func (c addCodec) Encode(v float64) (float64, error) { return v + c.delta, nil }
func (c addCodec) Decode(v float64) (float64, error) { return v - c.delta, nil }

// powCodec raises to a constant exponent. Only non-negative inputs are
// invertible for fractional exponents, matching math.Pow's real-valued
// domain.
type powCodec struct {
	exponent float64
}

// Pow returns a codec that raises to exponent on encode and to 1/exponent on
// decode. A zero exponent collapses every input to 1 and has no inverse, so
// it fails construction.
func Pow(exponent float64) (Codec[float64, float64], error) {
	if exponent == 0 {
		return nil, ErrZeroExponent
	}
	emitCodecCreated("pow", 0)
	return powCodec{exponent: exponent}, nil
}

func (c powCodec) Encode(v float64) (float64, error) { return math.Pow(v, c.exponent), nil }
func (c powCodec) Decode(v float64) (float64, error) { return math.Pow(v, 1/c.exponent), nil }
