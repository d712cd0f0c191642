package biject

import "context"

// chained composes two codecs by function composition.
type chained[In, Mid, Out any] struct {
	first Codec[In, Mid]
	next  Codec[Mid, Out]
}

func (c chained[In, Mid, Out]) Encode(v In) (Out, error) {
	mid, err := c.first.Encode(v)
	if err != nil {
		var zero Out
		return zero, err
	}
	return c.next.Encode(mid)
}

func (c chained[In, Mid, Out]) Decode(v Out) (In, error) {
	mid, err := c.next.Decode(v)
	if err != nil {
		var zero In
		return zero, err
	}
	return c.first.Decode(mid)
}

// Chain composes two codecs into one: Encode runs first then next, Decode
// runs next then first. The result preserves the round-trip law if and only
// if both stages individually satisfy it.
//
// A failure in either stage aborts the call at that point; the failing
// stage's error is returned unmodified.
func Chain[In, Mid, Out any](first Codec[In, Mid], next Codec[Mid, Out]) Codec[In, Out] {
	return chained[In, Mid, Out]{first: first, next: next}
}

// chainedContext composes two context-aware codecs. Stages run strictly in
// sequence: the output of one is fully materialized before the next begins.
type chainedContext[In, Mid, Out any] struct {
	first ContextCodec[In, Mid]
	next  ContextCodec[Mid, Out]
}

func (c chainedContext[In, Mid, Out]) Encode(ctx context.Context, v In) (Out, error) {
	mid, err := c.first.Encode(ctx, v)
	if err != nil {
		var zero Out
		return zero, err
	}
	return c.next.Encode(ctx, mid)
}

func (c chainedContext[In, Mid, Out]) Decode(ctx context.Context, v Out) (In, error) {
	mid, err := c.next.Decode(ctx, v)
	if err != nil {
		var zero In
		return zero, err
	}
	return c.first.Decode(ctx, mid)
}

// ChainContext composes two context-aware codecs with the same semantics as
// Chain. Use Bind to lift a synchronous codec into a pipeline that contains
// delegated stages.
func ChainContext[In, Mid, Out any](first ContextCodec[In, Mid], next ContextCodec[Mid, Out]) ContextCodec[In, Out] {
	return chainedContext[In, Mid, Out]{first: first, next: next}
}

// reversed swaps the direction of a codec. reversed[In, Out] implements
// Codec[Out, In].
type reversed[In, Out any] struct {
	c Codec[In, Out]
}

func (r reversed[In, Out]) Encode(v Out) (In, error) { return r.c.Decode(v) }
func (r reversed[In, Out]) Decode(v In) (Out, error) { return r.c.Encode(v) }

// Reversed returns a codec with Encode and Decode swapped.
// Reversing twice unwraps to the original codec.
func Reversed[In, Out any](c Codec[In, Out]) Codec[Out, In] {
	if r, ok := c.(reversed[Out, In]); ok {
		return r.c
	}
	return reversed[In, Out]{c: c}
}

// reversedContext is the ContextCodec counterpart of reversed.
type reversedContext[In, Out any] struct {
	c ContextCodec[In, Out]
}

func (r reversedContext[In, Out]) Encode(ctx context.Context, v Out) (In, error) {
	return r.c.Decode(ctx, v)
}

func (r reversedContext[In, Out]) Decode(ctx context.Context, v In) (Out, error) {
	return r.c.Encode(ctx, v)
}

// ReversedContext returns a context-aware codec with Encode and Decode
// swapped. Reversing twice unwraps to the original codec.
func ReversedContext[In, Out any](c ContextCodec[In, Out]) ContextCodec[Out, In] {
	if r, ok := c.(reversedContext[Out, In]); ok {
		return r.c
	}
	return reversedContext[In, Out]{c: c}
}

// bound lifts a synchronous codec into a ContextCodec. The context is
// accepted for uniformity but never consulted: the underlying codec has no
// suspension points.
type bound[In, Out any] struct {
	c Codec[In, Out]
}

func (b bound[In, Out]) Encode(_ context.Context, v In) (Out, error) { return b.c.Encode(v) }
func (b bound[In, Out]) Decode(_ context.Context, v Out) (In, error) { return b.c.Decode(v) }

// Bind lifts a synchronous codec into a ContextCodec so it can be chained
// with delegated stages via ChainContext.
func Bind[In, Out any](c Codec[In, Out]) ContextCodec[In, Out] {
	return bound[In, Out]{c: c}
}
