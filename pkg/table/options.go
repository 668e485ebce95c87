// Package table reader configuration.
package table

// Options configures a table read. The zero value is not usable; start from
// DefaultOptions or one of the format presets and adjust.
type Options struct {
	// Delimiter is the single byte separating fields. Default: ','.
	Delimiter byte

	// Comment, if not 0, is the comment byte. A line whose first
	// non-whitespace byte equals it is discarded entirely. Default: 0
	// (disabled).
	Comment byte

	// Quote is the byte that opens and closes a quoted field, inside which
	// delimiters and newlines are literal content. Default: '"'.
	Quote byte

	// HeaderStart is the 0-based index of the header line, counting only
	// non-comment lines. Negative means the input has no header row; column
	// names come from Names or are auto-generated as col1, col2, ...
	HeaderStart int

	// DataStart is the 0-based index of the first data line, counted the
	// same way as HeaderStart.
	DataStart int

	// DataEnd bounds the number of data rows. Zero reads to the end of
	// input. A positive value is an exclusive bound on the row count. A
	// negative value drops that many trailing rows; the trailing rows are
	// still tokenized, only materialization ignores them.
	DataEnd int

	// Names overrides the column names. With a header row present, the
	// header line is still consumed but its names are ignored.
	Names []string

	// IncludeNames, when non-empty, restricts the result to the named
	// columns. ExcludeNames removes columns from whatever IncludeNames
	// retained. Filtered-out columns are scanned but never stored.
	IncludeNames []string
	ExcludeNames []string

	// FillValues substitutes placeholder field values during
	// materialization. Keys match byte-exact: no case folding, no
	// whitespace stripping.
	FillValues []FillValue

	// FillIncludeNames and FillExcludeNames restrict which columns are
	// masked by rules that do not name their own columns.
	FillIncludeNames []string
	FillExcludeNames []string

	// FillExtraCols pads rows with fewer fields than the table width with
	// empty fields instead of failing the parse.
	FillExtraCols bool
}

// DefaultOptions returns the standard comma-separated configuration: header
// on the first line, data from the second, no comment handling.
func DefaultOptions() Options {
	return Options{
		Delimiter:   ',',
		Comment:     0,
		Quote:       '"',
		HeaderStart: 0,
		DataStart:   1,
	}
}

// BasicOptions returns the whitespace-separated configuration: space
// delimiter, '#' comments, strict row widths.
func BasicOptions() Options {
	opts := DefaultOptions()
	opts.Delimiter = ' '
	opts.Comment = '#'
	return opts
}

// CSVOptions returns the forgiving CSV configuration: comma delimiter, '#'
// comments, and short rows padded with empty fields.
func CSVOptions() Options {
	opts := DefaultOptions()
	opts.Comment = '#'
	opts.FillExtraCols = true
	return opts
}

// TabOptions returns the tab-separated configuration.
func TabOptions() Options {
	opts := DefaultOptions()
	opts.Delimiter = '\t'
	opts.Comment = '#'
	return opts
}

// NoHeaderOptions returns a configuration for input without a header line:
// data starts on the first line and columns are named col1, col2, ... unless
// Names is set.
func NoHeaderOptions() Options {
	opts := DefaultOptions()
	opts.HeaderStart = -1
	opts.DataStart = 0
	return opts
}

// OptionsError reports an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "table: invalid " + e.Field + ": " + e.Message
}

// Validate checks the options for internal consistency.
func (o Options) Validate() error {
	if o.Delimiter == 0 || o.Delimiter == '\n' {
		return &OptionsError{Field: "Delimiter", Message: "must be a single non-newline byte"}
	}
	if o.Quote == 0 || o.Quote == '\n' {
		return &OptionsError{Field: "Quote", Message: "must be a single non-newline byte"}
	}
	if o.Quote == o.Delimiter {
		return &OptionsError{Field: "Quote", Message: "quote byte same as delimiter"}
	}
	if o.Comment != 0 {
		if o.Comment == '\n' {
			return &OptionsError{Field: "Comment", Message: "must be a non-newline byte"}
		}
		if o.Comment == o.Delimiter {
			return &OptionsError{Field: "Comment", Message: "comment byte same as delimiter"}
		}
		if o.Comment == o.Quote {
			return &OptionsError{Field: "Comment", Message: "comment byte same as quote"}
		}
	}
	if o.DataStart < 0 {
		return &OptionsError{Field: "DataStart", Message: "must not be negative"}
	}
	return nil
}
