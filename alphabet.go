package biject

import "fmt"

// alphabet is a validated ordered symbol set used as a positional digit set.
// Symbols are single code points in the 0-255 range, stored as bytes.
type alphabet struct {
	symbols []byte
	index   [256]int16 // symbol -> digit value, -1 if absent
}

// newAlphabet validates and indexes a symbol set: at least two symbols, every
// symbol a single code point in 0-255, no duplicates. Validation failures are
// construction errors; nothing is deferred to use time.
func newAlphabet(symbols string) (*alphabet, error) {
	a := &alphabet{}
	for i := range a.index {
		a.index[i] = -1
	}

	for pos, r := range symbols {
		if r > 0xFF {
			return nil, fmt.Errorf("%w: %q at position %d", ErrSymbolRange, r, pos)
		}
		b := byte(r)
		if a.index[b] >= 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrDuplicateSymbol, b, pos)
		}
		a.index[b] = int16(len(a.symbols))
		a.symbols = append(a.symbols, b)
	}

	if len(a.symbols) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrAlphabetSize, len(a.symbols))
	}
	return a, nil
}

// base returns the radix of the alphabet.
func (a *alphabet) base() uint64 {
	return uint64(len(a.symbols))
}

// digit returns the value of a symbol, or a SymbolError if it is not in the
// alphabet. pos is the input offset for the error message.
func (a *alphabet) digit(b byte, pos int) (uint64, error) {
	v := a.index[b]
	if v < 0 {
		return 0, &SymbolError{Symbol: b, Pos: pos}
	}
	return uint64(v), nil
}

// symbol returns the symbol for a digit value. Values are always produced by
// modulo base, so the index is in range.
func (a *alphabet) symbol(v uint64) byte {
	return a.symbols[v]
}

// zero returns the alphabet's first symbol, used for the value zero and for
// minimum-length padding.
func (a *alphabet) zero() byte {
	return a.symbols[0]
}
