package biject

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrAlphabetSize indicates an alphabet with fewer than two symbols.
	ErrAlphabetSize = errors.New("alphabet needs at least 2 symbols")

	// ErrDuplicateSymbol indicates an alphabet containing the same symbol twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")

	// ErrSymbolRange indicates an alphabet symbol outside the single-byte range.
	ErrSymbolRange = errors.New("symbol code point exceeds 255")

	// ErrUnknownSymbol indicates a decode input containing a symbol absent
	// from the codec's alphabet.
	ErrUnknownSymbol = errors.New("symbol not in alphabet")

	// ErrEmptyInput indicates an empty string where content is required.
	ErrEmptyInput = errors.New("empty input")

	// ErrOverflow indicates a value outside the representable integer range.
	ErrOverflow = errors.New("value overflows uint64")

	// ErrMinLength indicates a non-positive minimum length.
	ErrMinLength = errors.New("minimum length must be at least 1")

	// ErrMaxLength indicates a non-positive maximum length.
	ErrMaxLength = errors.New("maximum length must be at least 1")

	// ErrEmptyFill indicates an empty padding fill pattern.
	ErrEmptyFill = errors.New("empty fill pattern")

	// ErrZeroFactor indicates a multiplier of zero, which has no inverse.
	ErrZeroFactor = errors.New("factor must be non-zero")

	// ErrZeroExponent indicates an exponent of zero, which has no inverse.
	ErrZeroExponent = errors.New("exponent must be non-zero")

	// ErrInvalidKeySize indicates a symmetric key of unsupported length.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrCiphertextShort indicates a ciphertext too short to contain a nonce.
	ErrCiphertextShort = errors.New("ciphertext too short")

	// ErrLengthBounds indicates an FPE input outside the configured
	// minimum/maximum length bounds.
	ErrLengthBounds = errors.New("input length outside configured bounds")

	// ErrRadixRange indicates an FPE alphabet whose size the underlying
	// cipher cannot handle.
	ErrRadixRange = errors.New("alphabet size outside supported radix range")
)

// SymbolError reports a symbol that a decode could not map to an alphabet
// digit. It wraps ErrUnknownSymbol with the offending symbol and its position.
type SymbolError struct {
	Symbol byte // Offending symbol
	Pos    int  // Byte offset within the decode input
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s: %q at position %d", ErrUnknownSymbol.Error(), e.Symbol, e.Pos)
}

func (e *SymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// BatchError reports a failure on one element of a batch operation. It wraps
// the element's error with the offending index so a caller can localize
// corruption in large batches.
type BatchError struct {
	Index int   // Offending element index
	Err   error // Error from the element
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// newBatchError qualifies an element error with its batch index.
func newBatchError(index int, err error) error {
	return &BatchError{Index: index, Err: err}
}
