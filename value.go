package mbshapes

import (
	"fmt"
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Value holds the storage of a parameter node: a (rows x columns) matrix stored column-major.
//
// The inference engine never reads or computes with it: the only time it writes to it is when the
// dimensions of a parameter are inferred, and the value is resized and zero-initialized.
type Value struct {
	dtype      dtypes.DType
	rows, cols int

	// flat is one of []float32, []float64, []float16.Float16 or []bfloat16.BFloat16.
	flat any
}

// NewValue creates a zero-initialized value with the given data type and dimensions.
// Dimensions can be 0 (unresolved), in which case the value is empty.
func NewValue(dtype dtypes.DType, rows, cols int) (*Value, error) {
	v := &Value{dtype: dtype}
	if err := v.Resize(rows, cols); err != nil {
		return nil, err
	}
	return v, nil
}

// ValueFromAny creates a value from a Go slice of rows (e.g. [][]float32 with one inner slice per row),
// or a flat slice which is taken as a single column.
func ValueFromAny(data any) (*Value, error) {
	shape, dtype, err := shapes.FromAnyValue(data)
	if err != nil {
		return nil, err
	}
	rows, cols := shape.Dim(0), 1
	switch shape.Rank() {
	case 1:
	case 2:
		cols = shape.Dim(1)
	default:
		return nil, errors.Errorf("ValueFromAny requires a slice or a slice of slices, got %T with shape %s", data, shape)
	}
	if dtype == dtypes.Int64 || dtype == dtypes.Int32 {
		// Integer literals are taken as float64 values.
		dtype = dtypes.Float64
	}
	v, err := NewValue(dtype, rows, cols)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(data)
	for r := range rows {
		for c := range cols {
			var elem reflect.Value
			if shape.Rank() == 1 {
				elem = rv.Index(r)
			} else {
				elem = rv.Index(r).Index(c)
			}
			v.set(c*rows+r, toFloat64(elem))
		}
	}
	return v, nil
}

// toFloat64 converts a reflected number to float64.
func toFloat64(elem reflect.Value) float64 {
	// Half-precision types are uint16 underneath: check for them before the kind.
	switch x := elem.Interface().(type) {
	case float16.Float16:
		return float64(x.Float32())
	case bfloat16.BFloat16:
		return float64(x.Float32())
	}
	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(elem.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(elem.Uint())
	case reflect.Float32, reflect.Float64:
		return elem.Float()
	}
	return 0
}

// DType returns the data type of the value.
func (v *Value) DType() dtypes.DType { return v.dtype }

// Dims returns the number of rows and columns of the value.
func (v *Value) Dims() (rows, cols int) { return v.rows, v.cols }

// Flat returns the underlying storage: a slice of the Go type corresponding to DType.
func (v *Value) Flat() any { return v.flat }

// Len returns the number of elements in the value.
func (v *Value) Len() int { return v.rows * v.cols }

// Resize the value to the given dimensions. Contents are not preserved: the new value is zero-initialized.
func (v *Value) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return errors.Errorf("invalid dimensions (%d x %d) for value", rows, cols)
	}
	size := rows * cols
	switch v.dtype {
	case dtypes.Float32:
		v.flat = make([]float32, size)
	case dtypes.Float64:
		v.flat = make([]float64, size)
	case dtypes.Float16:
		v.flat = make([]float16.Float16, size)
	case dtypes.BFloat16:
		v.flat = make([]bfloat16.BFloat16, size)
	default:
		return errors.Errorf("data type %s not supported for parameter values, only float types are", v.dtype)
	}
	v.rows, v.cols = rows, cols
	return nil
}

// SetConstant sets all elements of the value to x.
func (v *Value) SetConstant(x float64) {
	for i := range v.Len() {
		v.set(i, x)
	}
}

// set the element at the flat index i.
func (v *Value) set(i int, x float64) {
	switch flat := v.flat.(type) {
	case []float32:
		flat[i] = float32(x)
	case []float64:
		flat[i] = x
	case []float16.Float16:
		flat[i] = float16.Fromfloat32(float32(x))
	case []bfloat16.BFloat16:
		flat[i] = bfloat16.FromFloat32(float32(x))
	}
}

// At returns the element at the given row and column, converted to float64.
func (v *Value) At(row, col int) float64 {
	return v.get(col*v.rows + row)
}

// get the element at the flat index i.
func (v *Value) get(i int) float64 {
	switch flat := v.flat.(type) {
	case []float32:
		return float64(flat[i])
	case []float64:
		return flat[i]
	case []float16.Float16:
		return float64(flat[i].Float32())
	case []bfloat16.BFloat16:
		return float64(flat[i].Float32())
	}
	return 0
}

// IsZero returns whether all elements of the value are 0.
func (v *Value) IsZero() bool {
	for i := range v.Len() {
		if v.get(i) != 0 {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	return fmt.Sprintf("Value(%s)[%d x %d]", v.dtype, v.rows, v.cols)
}
