// Package shapes defines Shape, the descriptor of a tensor's geometry used by the inference engine.
//
// A Shape is an ordered list of dimensions (its rank is the number of axes), plus the per-axis strides and
// the offset of the first element, so that narrowed views (see Shape.NarrowTo) can be described without
// copying. Strides are column-major: the first axis is the fastest varying one.
//
// A dimension of 0 means the dimension is not yet resolved: shapes are built incrementally during the
// validation passes of a graph, and only on the final pass are all dimensions expected to be positive.
// See Shape.IsResolved.
//
// ## Glossary
//
//   - Rank: number of axes of a tensor.
//   - Axis: index of a dimension.
//   - Dimension: size of the tensor along one axis.
//   - Sample shape: shape of a single instance, excluding the minibatch (sequence and time) axes.
package shapes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Shape of a tensor or of a view into a tensor.
//
// Use Make to create a new shape. The zero value is the unresolved rank-0 shape.
type Shape struct {
	Dimensions []int

	// Strides in number of elements for each axis.
	Strides []int

	// Offset of the first element of the view, in number of elements.
	Offset int
}

// Make returns a contiguous Shape with the given dimensions.
// Dimensions can be 0 (unresolved), but never negative.
func Make(dimensions ...int) Shape {
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("shapes.Make(%v): cannot create a shape with an axis with dimension < 0", dimensions)
		}
	}
	return Shape{
		Dimensions: slices.Clone(dimensions),
		Strides:    contiguousStrides(dimensions),
	}
}

// Scalar returns the shape used for values reduced to a single element: rank 1 with dimension 1.
func Scalar() Shape {
	return Make(1)
}

// contiguousStrides returns the column-major strides of a dense tensor with the given dimensions.
func contiguousStrides(dimensions []int) []int {
	if len(dimensions) == 0 {
		return nil
	}
	strides := make([]int, len(dimensions))
	strides[0] = 1
	for axis := 1; axis < len(dimensions); axis++ {
		strides[axis] = strides[axis-1] * dimensions[axis-1]
	}
	return strides
}

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Size returns the number of elements, the product of all dimensions.
// It is 0 if any dimension is unresolved, and 1 for a rank-0 shape.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// IsResolved returns whether the shape has at least one axis and all its dimensions are positive.
func (s Shape) IsResolved() bool {
	if s.Rank() == 0 {
		return false
	}
	for _, d := range s.Dimensions {
		if d <= 0 {
			return false
		}
	}
	return true
}

// IsContiguous returns whether the shape describes a dense tensor: no offset and column-major strides.
func (s Shape) IsContiguous() bool {
	return s.Offset == 0 && slices.Equal(s.Strides, contiguousStrides(s.Dimensions))
}

// Equal compares dimensions, strides and offset.
func (s Shape) Equal(s2 Shape) bool {
	return s.Offset == s2.Offset &&
		slices.Equal(s.Dimensions, s2.Dimensions) &&
		slices.Equal(s.Strides, s2.Strides)
}

// EqualDimensions compares only the dimensions of the shapes.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{
		Dimensions: slices.Clone(s.Dimensions),
		Strides:    slices.Clone(s.Strides),
		Offset:     s.Offset,
	}
}

// String implements fmt.Stringer. Unresolved dimensions are printed as "?".
// Views that are not contiguous also print their strides and offset.
func (s Shape) String() string {
	parts := make([]string, len(s.Dimensions))
	for i, d := range s.Dimensions {
		if d == 0 {
			parts[i] = "?"
		} else {
			parts[i] = fmt.Sprintf("%d", d)
		}
	}
	str := "[" + strings.Join(parts, " x ") + "]"
	if !s.IsContiguous() {
		str += fmt.Sprintf("{strides=%v, offset=%d}", s.Strides, s.Offset)
	}
	return str
}

// nextStride returns the stride of an axis appended after the last one.
func (s Shape) nextStride() int {
	if s.Rank() == 0 {
		return 1
	}
	last := s.Rank() - 1
	return s.Strides[last] * s.Dimensions[last]
}

// Append returns a new shape with the given dimensions appended as new trailing axes.
func (s Shape) Append(dimensions ...int) Shape {
	out := s.Clone()
	if len(out.Strides) != out.Rank() {
		// Hand-built shape without strides: assume it is dense.
		out.Strides = contiguousStrides(out.Dimensions)
	}
	for _, dim := range dimensions {
		if dim < 0 {
			exceptions.Panicf("Shape.Append(%v): cannot append an axis with dimension < 0 to %s", dimensions, s)
		}
		stride := out.nextStride()
		out.Dimensions = append(out.Dimensions, dim)
		out.Strides = append(out.Strides, stride)
	}
	return out
}

// PadToRank returns a new shape padded with trailing axes of dimension 1 up to the given rank.
// If the shape already has rank >= the given rank, a copy is returned unchanged.
func (s Shape) PadToRank(rank int) Shape {
	if s.Rank() >= rank {
		return s.Clone()
	}
	ones := make([]int, rank-s.Rank())
	for i := range ones {
		ones[i] = 1
	}
	return s.Append(ones...)
}

// AppendAt returns a new shape with dim appended at the given axis, padding with axes of dimension 1
// in between if axis > Rank.
//
// It returns an error if axis < Rank, since that would require inserting in the middle of the shape.
func (s Shape) AppendAt(axis, dim int) (Shape, error) {
	if axis < s.Rank() {
		return Shape{}, errors.Errorf("cannot append a dimension at axis %d of shape %s with rank %d", axis, s, s.Rank())
	}
	return s.PadToRank(axis).Append(dim), nil
}

// NarrowTo returns a view of the shape restricted to the range [begin[axis], end[axis]) on each axis.
//
// Strides are preserved and the offset is advanced, so the returned shape indexes into the same storage
// as the original one.
func (s Shape) NarrowTo(begin, end []int) (Shape, error) {
	if len(begin) != s.Rank() || len(end) != s.Rank() {
		return Shape{}, errors.Errorf("NarrowTo(begin=%v, end=%v) requires one range per axis of shape %s", begin, end, s)
	}
	out := s.Clone()
	if len(out.Strides) != out.Rank() {
		out.Strides = contiguousStrides(out.Dimensions)
	}
	for axis := range out.Dimensions {
		if begin[axis] < 0 || begin[axis] > end[axis] || end[axis] > s.Dimensions[axis] {
			return Shape{}, errors.Errorf("NarrowTo(begin=%v, end=%v): invalid range [%d, %d) for axis %d of shape %s",
				begin, end, begin[axis], end[axis], axis, s)
		}
		out.Offset += begin[axis] * out.Strides[axis]
		out.Dimensions[axis] = end[axis] - begin[axis]
	}
	return out, nil
}
