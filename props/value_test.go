package props_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labelgraph/props"
)

func TestFromAny(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want props.Value
	}{
		{"string", "x", props.String("x")},
		{"bool", true, props.Bool(true)},
		{"int", 7, props.Int(7)},
		{"int32", int32(-2), props.Int(-2)},
		{"uint16", uint16(9), props.Int(9)},
		{"float32", float32(0.5), props.Float(0.5)},
		{"float64", 2.25, props.Float(2.25)},
		{"value", props.Int(3), props.Int(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := props.FromAny(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %s want %s", got, tc.want)
		})
	}

	_, err := props.FromAny([]int{1})
	assert.ErrorIs(t, err, props.ErrUnsupportedValue)
	_, err = props.FromAny(uint64(1 << 63))
	assert.ErrorIs(t, err, props.ErrUnsupportedValue)
	_, err = props.FromAny(nil)
	assert.ErrorIs(t, err, props.ErrUnsupportedValue)
}

func TestValue_Accessors(t *testing.T) {
	s, err := props.String("hi").AsString()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	f, err := props.Int(4).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 4.0, f)

	_, err = props.Bool(true).AsInt()
	assert.ErrorIs(t, err, props.ErrKindMismatch)
	_, err = props.Float(1).AsBool()
	assert.ErrorIs(t, err, props.ErrKindMismatch)

	assert.Equal(t, int64(5), props.Int(5).Interface())
	assert.Nil(t, props.Value{}.Interface())
	assert.Equal(t, props.KindFloat, props.Float(1).Kind())
	assert.Equal(t, "float", props.KindFloat.String())
	assert.Equal(t, `"a"`, props.String("a").String())
	assert.False(t, props.String("1").Equal(props.Int(1)))
}
