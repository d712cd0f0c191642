package biject

import (
	"errors"
	"math"
	"testing"
)

func TestMultiply_RoundTrip(t *testing.T) {
	c, err := Multiply(1.8)
	if err != nil {
		t.Fatalf("Multiply() error: %v", err)
	}

	for _, x := range []float64{0, 1, -3.5, 25, 1e12} {
		y, _ := c.Encode(x)
		back, _ := c.Decode(y)
		if math.Abs(back-x) > 1e-9 {
			t.Errorf("round-trip %v -> %v -> %v", x, y, back)
		}
	}
}

func TestMultiply_ZeroFactor(t *testing.T) {
	if _, err := Multiply(0); !errors.Is(err, ErrZeroFactor) {
		t.Errorf("Multiply(0) error = %v, want ErrZeroFactor", err)
	}
}

func TestAdd_RoundTrip(t *testing.T) {
	c := Add(32)

	y, _ := c.Encode(25)
	if y != 57 {
		t.Errorf("Encode(25) = %v, want 57", y)
	}
	back, _ := c.Decode(y)
	if back != 25 {
		t.Errorf("Decode(%v) = %v, want 25", y, back)
	}
}

func TestPow_RoundTrip(t *testing.T) {
	c, err := Pow(3)
	if err != nil {
		t.Fatalf("Pow() error: %v", err)
	}

	for _, x := range []float64{0, 1, 2, 10, 123.5} {
		y, _ := c.Encode(x)
		back, _ := c.Decode(y)
		if math.Abs(back-x) > 1e-9*math.Max(1, x) {
			t.Errorf("round-trip %v -> %v -> %v", x, y, back)
		}
	}
}

func TestPow_ZeroExponent(t *testing.T) {
	if _, err := Pow(0); !errors.Is(err, ErrZeroExponent) {
		t.Errorf("Pow(0) error = %v, want ErrZeroExponent", err)
	}
}
