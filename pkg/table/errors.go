// Package table error types.
package table

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-table/internal/tokenizer"
)

// Sentinel parse failures. Match with errors.Is against the error returned
// by any of the Read functions.
var (
	// ErrInvalidLine indicates the input ended before a requested line.
	ErrInvalidLine = errors.New("invalid line")

	// ErrTooManyCols indicates a row with more fields than the table width.
	ErrTooManyCols = errors.New("too many columns")

	// ErrNotEnoughCols indicates a row with fewer fields than the table
	// width while padding was disabled.
	ErrNotEnoughCols = errors.New("not enough columns")

	// ErrConversion indicates a field value that no candidate type accepts.
	// The string fallback makes this unreachable through the Read functions;
	// it is the public counterpart of the tokenizer's conversion error code.
	ErrConversion = errors.New("conversion error")
)

// ParseError is a structural failure in the input, carrying the 1-based data
// row it occurred on where relevant.
type ParseError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Line is the 1-based data row index, 0 when not applicable.
	Line int
}

// Error returns a formatted message with the row index where relevant.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrTooManyCols:
		return fmt.Sprintf("too many columns found in line %d of data", e.Line)
	case ErrNotEnoughCols:
		return fmt.Sprintf("not enough columns found in line %d of data", e.Line)
	case ErrInvalidLine:
		return "input ended before the requested line"
	case ErrConversion:
		return "cannot convert field value"
	default:
		return e.Kind.Error()
	}
}

// Unwrap returns the sentinel kind, enabling errors.Is matching.
func (e *ParseError) Unwrap() error { return e.Kind }

// fromTokenizerError translates the engine's error type into the public one.
func fromTokenizerError(err error) error {
	var te *tokenizer.Error
	if !errors.As(err, &te) {
		return err
	}
	kind := ErrInvalidLine
	switch te.Code {
	case tokenizer.TooManyCols:
		kind = ErrTooManyCols
	case tokenizer.NotEnoughCols:
		kind = ErrNotEnoughCols
	case tokenizer.ConversionError:
		kind = ErrConversion
	}
	return &ParseError{Kind: kind, Line: te.Line}
}
