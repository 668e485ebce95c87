// Package table column materialization: the int → float → string fallback
// chain over tokenized column storage.
package table

import "github.com/shapestone/shape-table/internal/tokenizer"

// materializeColumn produces the typed values for one logical column by
// replaying its token storage under each candidate type in turn. Promotion
// is strictly int → float → string: a single unparseable field anywhere in
// the column restarts the whole column under the next type. The iteration is
// a linear read of the column buffer, so the worst case is three cheap
// passes, never a re-tokenization.
//
// Fill-value substitution and mask construction happen inside the same pass:
// substituted fields are converted under the candidate type like any other
// value, so a masked cell always holds the replacement as seen through the
// column's final type.
func materializeColumn(tok *tokenizer.Tokenizer, col int, name string, nrows int, fills *fillSpec) *Column {
	if c := materializeInts(tok, col, name, nrows, fills); c != nil {
		return c
	}
	if c := materializeFloats(tok, col, name, nrows, fills); c != nil {
		return c
	}
	return materializeStrings(tok, col, name, nrows, fills)
}

func materializeInts(tok *tokenizer.Tokenizer, col int, name string, nrows int, fills *fillSpec) *Column {
	vals := make([]int64, 0, nrows)
	var mask []bool

	tok.StartIteration(col)
	for row := 0; row < nrows && !tok.Finished(); row++ {
		field := tok.NextField()
		repl, substituted, masked := fills.lookup(field, name)
		if substituted {
			field = []byte(repl)
		}
		v, err := tok.StrToInt(field)
		if err != nil {
			tok.ClearError() // expected failure, fall through to float
			return nil
		}
		vals = append(vals, v)
		if masked {
			if mask == nil {
				mask = make([]bool, nrows)
			}
			mask[row] = true
		}
	}
	return &Column{Name: name, Kind: KindInt, Ints: vals, Mask: mask}
}

func materializeFloats(tok *tokenizer.Tokenizer, col int, name string, nrows int, fills *fillSpec) *Column {
	vals := make([]float64, 0, nrows)
	var mask []bool

	tok.StartIteration(col)
	for row := 0; row < nrows && !tok.Finished(); row++ {
		field := tok.NextField()
		repl, substituted, masked := fills.lookup(field, name)
		if substituted {
			field = []byte(repl)
		}
		v, err := tok.StrToFloat(field)
		if err != nil {
			tok.ClearError() // expected failure, fall through to string
			return nil
		}
		vals = append(vals, v)
		if masked {
			if mask == nil {
				mask = make([]bool, nrows)
			}
			mask[row] = true
		}
	}
	return &Column{Name: name, Kind: KindFloat, Floats: vals, Mask: mask}
}

// materializeStrings is the final fallback and cannot fail: every byte
// sequence is representable. Non-UTF-8 bytes pass through unaltered; Go
// strings carry arbitrary bytes losslessly.
func materializeStrings(tok *tokenizer.Tokenizer, col int, name string, nrows int, fills *fillSpec) *Column {
	vals := make([]string, 0, nrows)
	var mask []bool

	tok.StartIteration(col)
	for row := 0; row < nrows && !tok.Finished(); row++ {
		field := tok.NextField()
		repl, substituted, masked := fills.lookup(field, name)
		var v string
		if substituted {
			v = repl
		} else {
			v = string(field) // copy out of borrowed column storage
		}
		vals = append(vals, v)
		if masked {
			if mask == nil {
				mask = make([]bool, nrows)
			}
			mask[row] = true
		}
	}
	return &Column{Name: name, Kind: KindString, Strings: vals, Mask: mask}
}
