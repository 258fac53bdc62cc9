package shapes

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// FromAnyValue returns the shape and data type of a Go value made of (possibly nested) slices of a
// plain-old-data type (ints, floats).
//
// The outermost slice maps to the first axis. Example:
//
//	shape, dtype, err := shapes.FromAnyValue([][]float32{{0, 0, 0}, {1, 1, 1}}) // Returns [2 x 3], Float32
func FromAnyValue(v any) (shape Shape, dtype dtypes.DType, err error) {
	if v == nil {
		err = errors.New("cannot take the shape of a nil value")
		return
	}
	var dims []int
	dims, dtype, err = dimsForAnyValueRecursive(nil, reflect.ValueOf(v), reflect.TypeOf(v))
	if err != nil {
		return
	}
	shape = Make(dims...)
	return
}

func dimsForAnyValueRecursive(prefix []int, v reflect.Value, t reflect.Type) ([]int, dtypes.DType, error) {
	if t.Kind() != reflect.Slice {
		// If it's not a slice, it must be one of the supported scalar types.
		dtype := dtypes.FromGoType(t)
		if dtype == dtypes.InvalidDType {
			return nil, dtype, errors.Errorf("cannot convert type %q to a shape (maybe type not supported yet?)", t)
		}
		return prefix, dtype, nil
	}

	// Slice: recurse into its element type (again slices or a supported POD).
	if v.Len() == 0 {
		return nil, dtypes.InvalidDType, errors.Errorf("value with empty slice not valid for shape conversion: %T: %v -- it wouldn't be possible to figure out the inner dimensions", v.Interface(), v)
	}
	prefix = append(prefix, v.Len())
	elemType := t.Elem()

	// The first element is the reference.
	dims, dtype, err := dimsForAnyValueRecursive(prefix, v.Index(0), elemType)
	if err != nil {
		return nil, dtype, err
	}

	// Test that other elements have the same shape as the first one.
	for ii := 1; ii < v.Len(); ii++ {
		otherDims, _, err := dimsForAnyValueRecursive(append([]int(nil), prefix...), v.Index(ii), elemType)
		if err != nil {
			return nil, dtype, err
		}
		if !Make(dims...).EqualDimensions(Make(otherDims...)) {
			return nil, dtype, errors.Errorf("sub-slices have irregular shapes, found shapes %v and %v", dims, otherDims)
		}
	}
	return dims, dtype, nil
}
