package mbshapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestValue(t *testing.T) {
	t.Run("half precision", func(t *testing.T) {
		v := must.M1(NewValue(dtypes.Float16, 2, 3))
		assert.IsType(t, []float16.Float16{}, v.Flat())
		assert.Equal(t, 6, v.Len())
		assert.True(t, v.IsZero())
		v.SetConstant(1.5)
		assert.Equal(t, 1.5, v.At(1, 2))
		assert.False(t, v.IsZero())

		bf := must.M1(NewValue(dtypes.BFloat16, 1, 1))
		assert.IsType(t, []bfloat16.BFloat16{}, bf.Flat())
		bf.SetConstant(2)
		assert.Equal(t, 2.0, bf.At(0, 0))
	})

	t.Run("resize", func(t *testing.T) {
		v := must.M1(NewValue(dtypes.Float32, 2, 2))
		v.SetConstant(3)
		require.NoError(t, v.Resize(4, 5))
		rows, cols := v.Dims()
		assert.Equal(t, 4, rows)
		assert.Equal(t, 5, cols)
		assert.Len(t, v.Flat(), 20)
		assert.True(t, v.IsZero())
		assert.Equal(t, "Value(Float32)[4 x 5]", v.String())
		require.Error(t, v.Resize(-1, 2))

		_, err := NewValue(dtypes.Int32, 1, 1)
		require.Error(t, err)
	})

	t.Run("from Go values", func(t *testing.T) {
		v := must.M1(ValueFromAny([][]float64{{1, 2, 3}, {4, 5, 6}}))
		rows, cols := v.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 3, cols)
		assert.Equal(t, 4.0, v.At(1, 0))
		assert.Equal(t, 3.0, v.At(0, 2))
		// Column-major.
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, v.Flat())

		v = must.M1(ValueFromAny([]int{1, 2, 3}))
		assert.Equal(t, dtypes.Float64, v.DType())
		rows, cols = v.Dims()
		assert.Equal(t, 3, rows)
		assert.Equal(t, 1, cols)
		assert.Equal(t, 2.0, v.At(1, 0))

		_, err := ValueFromAny([][][]float32{{{1}}})
		require.Error(t, err)
		_, err = ValueFromAny([][]float32{{1, 2}, {3}})
		require.Error(t, err)
		_, err = ValueFromAny(nil)
		require.Error(t, err)
	})
}
