// Package enumflag provides bit-flag helpers for integer enum types.
//
// Flags are plain integer types whose constants are powers of two:
//
//	type Channel uint8
//
//	const (
//		Red Channel = 1 << iota
//		Green
//		Blue
//	)
//
//	mask := enumflag.Add(Red, Blue)
//	enumflag.Has(mask, Blue) // true
package enumflag

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/cases"
)

// ErrUnknownName is returned by Parse for a name missing from the table.
var ErrUnknownName = errors.New("enumflag: unknown name")

// Has reports whether every bit of flag is set in v.
func Has[T constraints.Integer](v, flag T) bool {
	return v&flag == flag
}

// Any reports whether at least one bit of flag is set in v.
func Any[T constraints.Integer](v, flag T) bool {
	return v&flag != 0
}

// Is reports whether v equals flag exactly.
func Is[T constraints.Integer](v, flag T) bool {
	return v == flag
}

// Add returns v with the bits of flag set.
func Add[T constraints.Integer](v, flag T) T {
	return v | flag
}

// Remove returns v with the bits of flag cleared.
func Remove[T constraints.Integer](v, flag T) T {
	return v &^ flag
}

// Parse converts a list of flag names into a combined value.
// Names are matched case-insensitively and may be separated by '|', ',' or '+'.
// Surrounding whitespace is ignored. An empty string yields zero.
func Parse[T constraints.Integer](s string, names map[string]T) (T, error) {
	fold := cases.Fold()
	folded := make(map[string]T, len(names))
	for name, v := range names {
		folded[fold.String(name)] = v
	}

	var out T
	for _, part := range strings.FieldsFunc(s, isSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, ok := folded[fold.String(part)]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownName, part)
		}
		out |= v
	}
	return out, nil
}

func isSeparator(r rune) bool {
	return r == '|' || r == ',' || r == '+'
}

// Names returns the names whose bits are all set in v, ordered by value
// and then by name. Zero-valued names are only reported when v is zero.
func Names[T constraints.Integer](v T, names map[string]T) []string {
	type entry struct {
		name string
		val  T
	}
	var hits []entry
	for name, f := range names {
		if f == 0 {
			if v == 0 {
				hits = append(hits, entry{name, f})
			}
			continue
		}
		if Has(v, f) {
			hits = append(hits, entry{name, f})
		}
	}
	slices.SortFunc(hits, func(a, b entry) int {
		if c := cmp.Compare(a.val, b.val); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// Format joins Names with '|'.
func Format[T constraints.Integer](v T, names map[string]T) string {
	return strings.Join(Names(v, names), "|")
}
