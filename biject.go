// Package biject provides invertible data transformations that compose into
// pipelines.
//
// Every transformation is a Codec: a paired Encode/Decode where Decode is the
// exact inverse of Encode. Composing two codecs with Chain yields a new codec
// whose Decode undoes both steps in reverse order, so the round-trip law
//
//	Decode(Encode(x)) == x
//
// survives arbitrary composition as long as each stage satisfies it
// individually. Failures are detected eagerly: invalid configuration fails at
// construction, invalid input fails at the stage that sees it, and the error
// propagates out of the pipeline unmodified.
//
// # Composition
//
// Chain, Reversed, and Bind are package functions rather than methods because
// composition introduces new type parameters. This makes stage compatibility
// a compile-time property: the output type of one stage must match the input
// type of the next.
//
//	hex, _ := biject.Numeral("0123456789ABCDEF")
//	padded, _ := biject.PadStart(8, "0")
//	pipeline := biject.Chain(hex, padded)
//
//	s, _ := pipeline.Encode(255)  // "000000FF"
//	n, _ := pipeline.Decode(s)    // 255
//
// # Synchronous and context-aware codecs
//
// Core codecs (Numeral, CantorPair, PadStart/PadEnd, the arithmetic codecs)
// are pure computations: no I/O, no suspension, safe for concurrent use.
// Delegated stages that call out to a cryptographic provider implement
// ContextCodec instead, taking a context.Context on both operations. Bind
// lifts a synchronous codec into a ContextCodec so both kinds compose in one
// pipeline; stages always run strictly in chain order.
//
// # Built-in codecs
//
//   - Numeral(alphabet) - positional notation over an arbitrary symbol set
//   - CantorPair() / CantorPairs() - bijection between pairs and integers
//   - PadStart(n, fill) / PadEnd(n, fill) - fixed-length padding
//   - Multiply(f) / Add(d) / Pow(e) - arithmetic over float64
//   - JSON[T]() / Msgpack[T]() / YAML[T]() - serialization wrappers
//   - Bytes() / URI() / Base64() / Hex() - platform-primitive wrappers
//   - AEAD(key) - authenticated encryption (delegated, ContextCodec)
//   - FPE(key, tweak, alphabet) - format-preserving encryption (delegated)
package biject

import "context"

// Codec is an invertible transformation between In and Out.
//
// Implementations must be stateless with respect to the data they transform:
// any configuration is captured at construction and immutable afterwards, so
// a Codec is safe for concurrent use. Decode must be the exact inverse of
// Encode for every value Encode accepts.
type Codec[In, Out any] interface {
	// Encode transforms a value in the forward direction.
	Encode(v In) (Out, error)

	// Decode is the exact inverse of Encode.
	Decode(v Out) (In, error)
}

// ContextCodec is a Codec whose operations may suspend, typically because a
// stage delegates to an external cryptographic provider. The core codecs
// never suspend; cancelling the context abandons an in-flight delegated call.
type ContextCodec[In, Out any] interface {
	// Encode transforms a value in the forward direction.
	Encode(ctx context.Context, v In) (Out, error)

	// Decode is the exact inverse of Encode.
	Decode(ctx context.Context, v Out) (In, error)
}

// funcCodec adapts a pair of functions to the Codec interface.
type funcCodec[In, Out any] struct {
	encode func(In) (Out, error)
	decode func(Out) (In, error)
}

func (c funcCodec[In, Out]) Encode(v In) (Out, error) { return c.encode(v) }
func (c funcCodec[In, Out]) Decode(v Out) (In, error) { return c.decode(v) }

// New builds a Codec from an encode function and its inverse.
// The caller is responsible for the pair actually satisfying the round-trip
// law; nothing else in the package can verify it.
func New[In, Out any](encode func(In) (Out, error), decode func(Out) (In, error)) Codec[In, Out] {
	return funcCodec[In, Out]{encode: encode, decode: decode}
}

// funcContextCodec adapts a pair of context-aware functions to ContextCodec.
type funcContextCodec[In, Out any] struct {
	encode func(context.Context, In) (Out, error)
	decode func(context.Context, Out) (In, error)
}

func (c funcContextCodec[In, Out]) Encode(ctx context.Context, v In) (Out, error) {
	return c.encode(ctx, v)
}

func (c funcContextCodec[In, Out]) Decode(ctx context.Context, v Out) (In, error) {
	return c.decode(ctx, v)
}

// NewContext builds a ContextCodec from an encode function and its inverse.
func NewContext[In, Out any](encode func(context.Context, In) (Out, error), decode func(context.Context, Out) (In, error)) ContextCodec[In, Out] {
	return funcContextCodec[In, Out]{encode: encode, decode: decode}
}
