// Package table fill-value substitution rules.
package table

// FillValue is a substitution rule applied during materialization: a field
// whose raw bytes equal Bad is replaced by Replacement before type
// conversion, and the row is masked in columns the rule reaches.
//
// When Columns is non-empty the rule masks exactly those columns. When it is
// empty the rule masks every column in the globally eligible set: all column
// names, intersected with FillIncludeNames when supplied, minus
// FillExcludeNames. Substitution itself is unconditional; only the masking
// is scoped.
//
// Keys match byte-exact. A rule with Bad "" matches empty fields, including
// the padding added for short rows under FillExtraCols.
type FillValue struct {
	Bad         string
	Replacement string
	Columns     []string
}

// fillRule is a resolved FillValue.
type fillRule struct {
	replacement string
	columns     map[string]bool // nil means defer to the eligible set
}

// fillSpec is the per-read resolution of the fill options against the actual
// column names. A nil spec applies no substitution at all.
type fillSpec struct {
	rules    map[string]fillRule
	eligible map[string]bool
}

// resolveFills builds the lookup structures for one read. Later rules with
// the same key win, matching the order the caller supplied them in.
func resolveFills(opts Options, names []string) *fillSpec {
	if len(opts.FillValues) == 0 {
		return nil
	}

	eligible := make(map[string]bool, len(names))
	if len(opts.FillIncludeNames) > 0 {
		include := make(map[string]bool, len(opts.FillIncludeNames))
		for _, name := range opts.FillIncludeNames {
			include[name] = true
		}
		for _, name := range names {
			if include[name] {
				eligible[name] = true
			}
		}
	} else {
		for _, name := range names {
			eligible[name] = true
		}
	}
	for _, name := range opts.FillExcludeNames {
		delete(eligible, name)
	}

	rules := make(map[string]fillRule, len(opts.FillValues))
	for _, fv := range opts.FillValues {
		rule := fillRule{replacement: fv.Replacement}
		if len(fv.Columns) > 0 {
			rule.columns = make(map[string]bool, len(fv.Columns))
			for _, name := range fv.Columns {
				rule.columns[name] = true
			}
		}
		rules[fv.Bad] = rule
	}

	return &fillSpec{rules: rules, eligible: eligible}
}

// lookup checks one raw field against the rules. It returns the replacement
// to use, whether a substitution applies, and whether the row should be
// masked in the named column.
func (s *fillSpec) lookup(field []byte, col string) (replacement string, substituted, masked bool) {
	if s == nil {
		return "", false, false
	}
	rule, ok := s.rules[string(field)]
	if !ok {
		return "", false, false
	}
	if rule.columns != nil {
		masked = rule.columns[col]
	} else {
		masked = s.eligible[col]
	}
	return rule.replacement, true, masked
}
