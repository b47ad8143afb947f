package table

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"tunnelstats/domain/core"
)

// nonNumeric matches everything a chainage string may not contain.
var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// Normalizer canonicalizes column names, cleans the chainage column and
// sorts rows by chainage.
type Normalizer struct {
	rules Rules
}

// NewNormalizer creates a normalizer using the given classification rules.
func NewNormalizer(rules Rules) *Normalizer {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Normalizer{rules: rules}
}

// Normalize trims and lower-cases column names, detects the position column
// (first name containing a position substring), cleans its values, drops
// rows whose position fails to parse and sorts the rest ascending. The sort
// is stable: equal positions keep their original relative order.
//
// When no position column exists the header-normalized table is returned
// together with core.ErrMissingPositionColumn; tolerant callers may keep
// using that table unfiltered and unsorted.
//
// The input table is never mutated. Duplicate names after normalization
// collapse to one column, last occurrence wins.
func (n *Normalizer) Normalize(raw *Table) (*Table, string, error) {
	normalized := n.normalizeHeaders(raw)

	posCol := n.rules.First(RolePosition, normalized.Columns)
	if posCol == "" {
		return normalized, "", core.ErrMissingPositionColumn
	}

	out := New(normalized.Columns)
	for _, row := range normalized.Rows {
		pos, ok := CleanChainage(row[posCol])
		if !ok {
			continue
		}
		kept := make(Row, len(row))
		for k, v := range row {
			kept[k] = v
		}
		kept[posCol] = Num(pos)
		out.Rows = append(out.Rows, kept)
	}

	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i][posCol].Num < out.Rows[j][posCol].Num
	})

	return out, posCol, nil
}

// normalizeHeaders maps every column name to its trimmed, lower-cased form.
func (n *Normalizer) normalizeHeaders(raw *Table) *Table {
	seen := make(map[string]bool, len(raw.Columns))
	var columns []string
	for _, c := range raw.Columns {
		name := strings.ToLower(strings.TrimSpace(c))
		if !seen[name] {
			seen[name] = true
			columns = append(columns, name)
		}
	}

	out := New(columns)
	out.Rows = make([]Row, len(raw.Rows))
	for i, row := range raw.Rows {
		cleaned := make(Row, len(row))
		// Iterate columns in order so a duplicated name resolves to the
		// last original column holding it.
		for _, c := range raw.Columns {
			if v, ok := row[c]; ok {
				cleaned[strings.ToLower(strings.TrimSpace(c))] = v
			}
		}
		out.Rows[i] = cleaned
	}
	return out
}

// CleanChainage coerces one position cell to a finite float. Nulls fail,
// numbers pass through, text is stripped of everything but digits and dots
// before parsing. The second return is false when the value is unusable.
func CleanChainage(v Value) (float64, bool) {
	switch v.Kind {
	case KindNumber:
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			return 0, false
		}
		return v.Num, true
	case KindText:
		s := nonNumeric.ReplaceAllString(v.Text, "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
