package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labelgraph/builder"
)

func TestLabelFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.LabelFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Default_zero", builder.DefaultLabelFn, 0, "0", false},
		{"Default_multi", builder.DefaultLabelFn, 123, "123", false},
		{"Excel_zero", builder.ExcelColumnLabelFn, 0, "A", false},
		{"Excel_endSingle", builder.ExcelColumnLabelFn, 25, "Z", false},
		{"Excel_startDouble", builder.ExcelColumnLabelFn, 26, "AA", false},
		{"Excel_ZZ", builder.ExcelColumnLabelFn, 701, "ZZ", false},
		{"Excel_AAA", builder.ExcelColumnLabelFn, 702, "AAA", false},
		{"Excel_neg", builder.ExcelColumnLabelFn, -1, "", true},
		{"Prefixed", builder.PrefixedLabelFn("v"), 7, "v7", false},
		{"Prefixed_neg", builder.PrefixedLabelFn("v"), -1, "", true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, builder.Labels(3, builder.ExcelColumnLabelFn))
	assert.Equal(t, []string{"0", "1"}, builder.Labels(2, nil))
	assert.Empty(t, builder.Labels(-1, nil))
}
