// Package table read entry points.
package table

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/shapestone/shape-table/internal/source"
	"github.com/shapestone/shape-table/internal/tokenizer"
)

// Read parses an in-memory table. The input need not end with a newline; a
// terminated copy is made when it does not.
func Read(data []byte, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return read(source.EnsureNewline(data), opts)
}

// ReadReader reads r to the end and parses the result. The whole input is
// materialized before tokenization starts.
func ReadReader(r io.Reader, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	data, err := source.Slurp(r)
	if err != nil {
		return nil, err
	}
	return read(source.EnsureNewline(data), opts)
}

// ReadFile parses the named file. Files ending in .gz, .bz2, .zst or .xz are
// decompressed transparently; plain files are memory-mapped where the
// platform allows.
func ReadFile(path string, opts Options) (*Table, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	data, cleanup, err := source.SlurpFile(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return read(source.EnsureNewline(data), opts)
}

// read runs the pipeline over a terminated buffer: resolve names, filter
// columns, tokenize the body, materialize each retained column.
func read(buf []byte, opts Options) (*Table, error) {
	tok := tokenizer.New(opts.Delimiter, opts.Comment, opts.Quote, opts.FillExtraCols)
	tok.SetSource(buf)

	names, err := resolveNames(tok, opts)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return &Table{cols: map[string]*Column{}}, nil
	}

	useCols, retained := columnMask(names, opts)

	tok.SetNumCols(len(names))
	end := -1
	if opts.DataEnd > 0 {
		end = opts.DataEnd
	}
	if err := tok.Tokenize(opts.DataStart, end, false, useCols); err != nil {
		return nil, fromTokenizerError(err)
	}

	nrows := tok.NumRows()
	if opts.DataEnd < 0 {
		nrows += opts.DataEnd
		if nrows < 0 {
			nrows = 0
		}
	}
	log.Debug().
		Int("rows", nrows).
		Int("cols", len(retained)).
		Msg("tokenized table body")

	fills := resolveFills(opts, names)

	out := &Table{
		names: make([]string, 0, len(retained)),
		cols:  make(map[string]*Column, len(retained)),
	}
	for _, rc := range retained {
		col := materializeColumn(tok, rc.index, rc.name, nrows, fills)
		out.names = append(out.names, rc.name)
		out.cols[rc.name] = col
		log.Debug().
			Str("column", rc.name).
			Str("kind", string(col.Kind)).
			Bool("masked", col.Mask != nil).
			Msg("materialized column")
	}
	return out, nil
}

// resolveNames determines the column names, running the tokenizer in header
// mode when the width has to come from the input itself.
func resolveNames(tok *tokenizer.Tokenizer, opts Options) ([]string, error) {
	if opts.HeaderStart >= 0 {
		if err := tok.Tokenize(opts.HeaderStart, -1, true, nil); err != nil {
			return nil, fromTokenizerError(err)
		}
		if len(opts.Names) > 0 {
			// Explicit names override the header line, which stays consumed.
			return copyNames(opts.Names), nil
		}
		return tok.HeaderNames(), nil
	}

	if len(opts.Names) > 0 {
		return copyNames(opts.Names), nil
	}

	// No header and no explicit names: run header mode over the first data
	// line purely to count its fields, then name the columns col1..colN.
	if err := tok.Tokenize(opts.DataStart, -1, true, nil); err != nil {
		return nil, fromTokenizerError(err)
	}
	n := len(tok.HeaderNames())
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("col%d", i+1)
	}
	return names, nil
}

// retainedCol ties a surviving column name to its index in the full table
// width, which is what the tokenizer storage is addressed by.
type retainedCol struct {
	name  string
	index int
}

// columnMask applies the include/exclude filters. The returned mask is nil
// when every column survives; otherwise it has one entry per declared column
// and the tokenizer skips storage for the false ones.
func columnMask(names []string, opts Options) ([]bool, []retainedCol) {
	retained := make([]retainedCol, 0, len(names))

	if len(opts.IncludeNames) == 0 && len(opts.ExcludeNames) == 0 {
		for i, name := range names {
			retained = append(retained, retainedCol{name: name, index: i})
		}
		return nil, retained
	}

	include := make(map[string]bool, len(opts.IncludeNames))
	for _, name := range opts.IncludeNames {
		include[name] = true
	}
	exclude := make(map[string]bool, len(opts.ExcludeNames))
	for _, name := range opts.ExcludeNames {
		exclude[name] = true
	}

	mask := make([]bool, len(names))
	for i, name := range names {
		keep := len(opts.IncludeNames) == 0 || include[name]
		if exclude[name] {
			keep = false
		}
		mask[i] = keep
		if keep {
			retained = append(retained, retainedCol{name: name, index: i})
		}
	}
	return mask, retained
}

func copyNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
