// Label schemes for naming the vertices of constructed topologies.

package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates a vertex label from its zero-based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type LabelFn func(idx int) string

// DefaultLabelFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnLabelFn returns the “Excel-style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(k) time where k ≈ log₍₂₆₎(idx), O(1) extra space.
// Panics if idx < 0.
func ExcelColumnLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnLabelFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 { // 26 alphabet size
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedLabelFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func PrefixedLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedLabelFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// Labels returns fn(0), fn(1), ..., fn(n-1). A nil fn means DefaultLabelFn.
// Complexity: O(n).
func Labels(n int, fn LabelFn) []string {
	if fn == nil {
		fn = DefaultLabelFn
	}
	if n < 0 {
		n = 0
	}
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}
