package tokenizer

import (
	"strconv"
	"unsafe"
)

// The numeric converters are standalone and reentrant against the scan: they
// read nothing but their argument and write nothing but the shared error
// slot. strconv does the parsing; it accepts an optional sign and digits, for
// floats also an optional fraction and exponent, and rejects empty input,
// trailing garbage and overflow. ParseFloat additionally accepts the
// "inf"/"infinity"/"nan" spellings and hexadecimal floats such as "0x1p-2".

// StrToInt converts a field to a signed 64-bit integer. Surrounding blanks
// are allowed. On rejection the shared error slot is set to ConversionError.
func (t *Tokenizer) StrToInt(field []byte) (int64, error) {
	v, err := strconv.ParseInt(unsafeString(trimBlanks(field)), 10, 64)
	if err != nil {
		t.code = ConversionError
		return 0, &Error{Code: ConversionError}
	}
	return v, nil
}

// StrToFloat converts a field to a 64-bit float. Surrounding blanks are
// allowed. On rejection the shared error slot is set to ConversionError.
func (t *Tokenizer) StrToFloat(field []byte) (float64, error) {
	v, err := strconv.ParseFloat(unsafeString(trimBlanks(field)), 64)
	if err != nil {
		t.code = ConversionError
		return 0, &Error{Code: ConversionError}
	}
	return v, nil
}

// trimBlanks strips leading and trailing spaces and tabs.
func trimBlanks(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}

// unsafeString converts a []byte to a string without allocation. The
// converters only pass it subslices of immutable column storage, which are
// never written to while the string is live.
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
