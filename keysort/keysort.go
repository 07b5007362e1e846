// Package keysort provides a deterministic total order over heterogeneous
// comparison keys built from optional fields.
//
// Model and archive types in this repository compare themselves by
// converting their fields into key tuples. Optional fields yield nil, so
// the ordering has to be total even when nil, scalars, and nested tuples
// are mixed in one list. The convention is fixed:
//
//   - nil sorts before everything else
//   - scalars sort before tuples
//   - mismatched scalar kinds are ordered by kind (bool, int, float,
//     string) rather than raising
//   - tuples compare element-wise; a shorter tuple that is a prefix of a
//     longer one sorts first
package keysort

import "sort"

// Key is a heterogeneous comparison key. Elements may be nil, bool, int,
// int64, float64, string, or a nested Key.
type Key []any

// kindRank assigns a fixed rank to each supported value kind so that
// mismatched kinds still have a defined order.
func kindRank(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case int, int64:
		return 2
	case float64:
		return 3
	case string:
		return 4
	case Key:
		return 5
	}
	// Unknown kinds sort last, after tuples.
	return 6
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

// Compare returns -1, 0, or 1 ordering a before, equal to, or after b.
func Compare(a, b any) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}

	switch va := a.(type) {
	case nil:
		return 0
	case bool:
		vb := b.(bool)
		if va == vb {
			return 0
		}
		if !va {
			return -1
		}
		return 1
	case int, int64:
		na, nb := asInt64(a), asInt64(b)
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case float64:
		vb := b.(float64)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	case string:
		vb := b.(string)
		switch {
		case va < vb:
			return -1
		case va > vb:
			return 1
		}
		return 0
	case Key:
		vb := b.(Key)
		n := len(va)
		if len(vb) < n {
			n = len(vb)
		}
		for i := 0; i < n; i++ {
			if c := Compare(va[i], vb[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(va) < len(vb):
			return -1
		case len(va) > len(vb):
			return 1
		}
		return 0
	}
	return 0
}

// Equal reports whether two keys compare as identical.
func Equal(a, b any) bool {
	return Compare(a, b) == 0
}

// Sorted returns a sorted copy of values under the package ordering. The
// input is not modified, and the result is independent of input order.
func Sorted(values []any) []any {
	out := make([]any, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j]) < 0
	})
	return out
}

// SortKeys sorts a slice of keys in place.
func SortKeys(keys []Key) {
	sort.SliceStable(keys, func(i, j int) bool {
		return Compare(keys[i], keys[j]) < 0
	})
}
