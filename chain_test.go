package biject

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestChain_MultiplyAdd(t *testing.T) {
	scale, err := Multiply(1.8)
	if err != nil {
		t.Fatalf("Multiply() error: %v", err)
	}
	c := Chain(scale, Add(32))

	// Celsius to Fahrenheit and back.
	f, err := c.Encode(25)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if math.Abs(f-77) > 1e-9 {
		t.Errorf("Encode(25) = %v, want 77", f)
	}

	back, err := c.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if math.Abs(back-25) > 1e-9 {
		t.Errorf("Decode(Encode(25)) = %v, want 25", back)
	}
}

func TestChain_HeterogeneousTypes(t *testing.T) {
	hex, err := Numeral("0123456789ABCDEF")
	if err != nil {
		t.Fatalf("Numeral() error: %v", err)
	}
	pad, err := PadStart(8, "0")
	if err != nil {
		t.Fatalf("PadStart() error: %v", err)
	}

	c := Chain(hex, pad)

	s, err := c.Encode(255)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if s != "000000FF" {
		t.Errorf("Encode(255) = %q, want %q", s, "000000FF")
	}

	n, err := c.Decode(s)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if n != 255 {
		t.Errorf("Decode(%q) = %d, want 255", s, n)
	}
}

func TestChain_Associativity(t *testing.T) {
	a, err := Multiply(3)
	if err != nil {
		t.Fatalf("Multiply() error: %v", err)
	}
	b := Add(7)
	c, err := Multiply(0.5)
	if err != nil {
		t.Fatalf("Multiply() error: %v", err)
	}

	left := Chain(Chain(a, b), c)
	right := Chain(a, Chain(b, c))

	for _, x := range []float64{0, 1, -4, 25, 1e6} {
		le, err := left.Encode(x)
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}
		re, err := right.Encode(x)
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}
		if le != re {
			t.Errorf("Encode(%v): left %v, right %v", x, le, re)
		}

		back, err := left.Decode(le)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		if math.Abs(back-x) > 1e-9 {
			t.Errorf("round-trip %v -> %v -> %v", x, le, back)
		}
	}
}

func TestChain_ErrorPropagatesUnmodified(t *testing.T) {
	hex, err := Numeral("0123456789ABCDEF")
	if err != nil {
		t.Fatalf("Numeral() error: %v", err)
	}
	pad, err := PadStart(8, "0")
	if err != nil {
		t.Fatalf("PadStart() error: %v", err)
	}

	c := Chain(hex, pad)

	_, err = c.Decode("000000XY")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Decode error = %v, want the inner stage's ErrUnknownSymbol", err)
	}
	var symErr *SymbolError
	if !errors.As(err, &symErr) {
		t.Errorf("inner *SymbolError should survive composition, got %T", err)
	}
}

func TestReversed_SwapsDirections(t *testing.T) {
	hex, err := Numeral("0123456789ABCDEF")
	if err != nil {
		t.Fatalf("Numeral() error: %v", err)
	}

	r := Reversed(hex)

	n, err := r.Encode("FF")
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if n != 255 {
		t.Errorf("Reversed Encode(%q) = %d, want 255", "FF", n)
	}

	s, err := r.Decode(255)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if s != "FF" {
		t.Errorf("Reversed Decode(255) = %q, want %q", s, "FF")
	}
}

func TestReversed_TwiceUnwraps(t *testing.T) {
	hex, err := Numeral("0123456789ABCDEF")
	if err != nil {
		t.Fatalf("Numeral() error: %v", err)
	}

	rr := Reversed(Reversed(hex))
	if rr != hex {
		t.Error("Reversed(Reversed(c)) should unwrap to the original codec")
	}
}

// stageRecorder tracks execution order across a context-aware pipeline.
type stageRecorder struct {
	name  string
	order *[]string
}

func (s stageRecorder) Encode(_ context.Context, v int) (int, error) {
	*s.order = append(*s.order, s.name+".encode")
	return v, nil
}

func (s stageRecorder) Decode(_ context.Context, v int) (int, error) {
	*s.order = append(*s.order, s.name+".decode")
	return v, nil
}

func TestChainContext_Ordering(t *testing.T) {
	var order []string
	a := stageRecorder{name: "a", order: &order}
	b := stageRecorder{name: "b", order: &order}

	c := ChainContext[int, int, int](a, b)
	ctx := context.Background()

	if _, err := c.Encode(ctx, 1); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if _, err := c.Decode(ctx, 1); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	want := []string{"a.encode", "b.encode", "b.decode", "a.decode"}
	if len(order) != len(want) {
		t.Fatalf("stage order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("stage order = %v, want %v", order, want)
		}
	}
}

func TestChainContext_AbortsOnError(t *testing.T) {
	var order []string
	a := stageRecorder{name: "a", order: &order}

	sentinel := errors.New("stage failure")
	failing := NewContext(
		func(context.Context, int) (int, error) { return 0, sentinel },
		func(context.Context, int) (int, error) { return 0, sentinel },
	)

	c := ChainContext[int, int, int](a, failing)

	_, err := c.Encode(context.Background(), 1)
	if !errors.Is(err, sentinel) {
		t.Fatalf("Encode error = %v, want the failing stage's error unmodified", err)
	}

	order = order[:0]
	_, err = c.Decode(context.Background(), 1)
	if !errors.Is(err, sentinel) {
		t.Fatalf("Decode error = %v, want the failing stage's error unmodified", err)
	}
	if len(order) != 0 {
		t.Errorf("first stage ran on decode despite later stage failing first: %v", order)
	}
}

func TestBind_LiftsSyncCodec(t *testing.T) {
	hex, err := Numeral("0123456789ABCDEF")
	if err != nil {
		t.Fatalf("Numeral() error: %v", err)
	}

	c := Bind(hex)
	ctx := context.Background()

	s, err := c.Encode(ctx, 255)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	n, err := c.Decode(ctx, s)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if n != 255 {
		t.Errorf("round-trip through Bind: got %d, want 255", n)
	}
}

func TestReversedContext_TwiceUnwraps(t *testing.T) {
	var order []string
	a := stageRecorder{name: "a", order: &order}

	var cc ContextCodec[int, int] = a
	rr := ReversedContext(ReversedContext(cc))
	if rr != cc {
		t.Error("ReversedContext(ReversedContext(c)) should unwrap to the original codec")
	}
}
