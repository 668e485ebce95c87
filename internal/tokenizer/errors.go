package tokenizer

import "fmt"

// Code identifies the kind of error recorded by the tokenizer. It doubles as
// the shared error slot that the numeric converters write to, so a single
// inspection point covers both structural and conversion failures.
type Code int

const (
	// NoError means the last run completed cleanly.
	NoError Code = iota
	// InvalidLine means the input ended before the requested line.
	InvalidLine
	// TooManyCols means a row committed more fields than the declared width.
	TooManyCols
	// NotEnoughCols means a row ended short of the declared width and
	// padding was not enabled.
	NotEnoughCols
	// ConversionError means a numeric converter rejected a field.
	ConversionError
)

// String returns the string representation of the code.
func (c Code) String() string {
	switch c {
	case NoError:
		return "no error"
	case InvalidLine:
		return "invalid line"
	case TooManyCols:
		return "too many columns"
	case NotEnoughCols:
		return "not enough columns"
	case ConversionError:
		return "conversion error"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is a tokenizer failure with the 1-based row index it occurred on.
// Conversion errors carry no row; the materializer tracks its own position.
type Error struct {
	Code Code
	Line int
}

// Error returns a formatted message with the row index where relevant.
func (e *Error) Error() string {
	switch e.Code {
	case InvalidLine:
		return "input ended before the requested line"
	case TooManyCols:
		return fmt.Sprintf("too many columns found in line %d of data", e.Line)
	case NotEnoughCols:
		return fmt.Sprintf("not enough columns found in line %d of data", e.Line)
	case ConversionError:
		return "cannot convert field value"
	default:
		return e.Code.String()
	}
}
