// Package shapeinference implements the node-independent shape rules used when validating a graph:
// broadcasting of sample shapes, compatibility of the legacy (rows x columns) matrix view of two operands,
// borrowing of unresolved dimensions and the rank used by element-wise tensor operations.
//
// A dimension of 0 means "not yet resolved". The rules that can fail take the operands as they are, and
// it is up to the caller to only treat their errors as fatal on the final validation pass.
package shapeinference

import (
	"fmt"

	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/pkg/errors"
)

var (
	// ErrDimensionMismatch is returned when the row/column counts of two operands are incompatible.
	ErrDimensionMismatch = errors.New("matrix dimensions do not match")

	// ErrInvalidBroadcast is returned when two sample shapes differ in a non-broadcastable way.
	ErrInvalidBroadcast = errors.New("sample shapes are not broadcast compatible")
)

// MatrixDims is the legacy 2D view of a node's value: Rows is the number of elements of one sample, and
// Cols is the number of samples (columns).
type MatrixDims struct {
	Rows, Cols int
}

// String implements fmt.Stringer.
func (d MatrixDims) String() string {
	return fmt.Sprintf("(%d x %d)", d.Rows, d.Cols)
}

// BroadcastSampleShapes returns the sample shape resulting from an element-wise operation on two operands.
//
// The rank of the output is the largest of both ranks, the shorter shape being padded with trailing axes of
// dimension 1. On each axis a dimension of 1 broadcasts to the other operand's dimension, otherwise both
// dimensions must match. A mismatch is an ErrInvalidBroadcast only if isFinalPass: on earlier passes the
// dimension of shape0 is kept, since it may not be resolved yet.
func BroadcastSampleShapes(shape0, shape1 shapes.Shape, isFinalPass bool) (output shapes.Shape, err error) {
	dims := shape0.PadToRank(shape1.Rank()).Dimensions

	// If shape0 has the higher rank, its extra axes are kept as they are.
	for axis := range shape1.Rank() {
		dim1 := shape1.Dimensions[axis]
		switch {
		case dims[axis] == 1:
			dims[axis] = dim1
		case dim1 == 1:
			// Output already correct.
		case dim1 != dims[axis] && isFinalPass:
			err = errors.Wrapf(ErrInvalidBroadcast, "dimensions %s and %s differ on axis #%d", shape0, shape1, axis)
			return
		}
	}
	output = shapes.Make(dims...)
	return
}

// divides returns whether a is an exact multiple of a positive b.
func divides(a, b int) bool {
	return b > 0 && a%b == 0
}

// CheckBinaryZipDims checks the legacy (rows x columns) compatibility of the two operands of an element-wise
// binary operation. It should only be called on the final validation pass.
//
//   - sameLayout: whether both operands share the same minibatch layout (including both having none).
//   - hasLayout: whether the output node has a minibatch layout.
//   - allowMultiples: whether the operation accepts operands whose dimensions are multiples of each other.
//
// The operands are compatible if the dimensions match, or if allowMultiples and one of them is a row
// vector, or if allowMultiples and one of the dimensions is an exact multiple of the other, as described
// below.
func CheckBinaryZipDims(lhs, rhs MatrixDims, sameLayout, hasLayout, allowMultiples bool) error {
	sameCols := sameLayout || lhs.Cols == rhs.Cols
	if lhs.Rows == rhs.Rows && sameCols {
		return nil
	}
	if allowMultiples && (lhs.Rows == 1 || rhs.Rows == 1) && sameCols {
		return nil
	}
	if allowMultiples {
		// Only the left-hand side may have a multiple of the right-hand side's columns, while the rows can be
		// multiples in either direction, when the other operand is a single column.
		// TODO: decide whether a rhs with a multiple of the lhs columns should be accepted too.
		if !hasLayout && lhs.Cols > rhs.Cols && divides(lhs.Cols, rhs.Cols) {
			return nil
		}
		if lhs.Cols == 1 && divides(rhs.Rows, lhs.Rows) {
			return nil
		}
		if rhs.Cols == 1 && divides(lhs.Rows, rhs.Rows) {
			return nil
		}
	}
	return errors.Wrapf(ErrDimensionMismatch, "operands %s and %s (sameLayout=%v, allowMultiples=%v)",
		lhs, rhs, sameLayout, allowMultiples)
}

// CheckBinaryReduceDims checks the compatibility of the two operands of a reduction to a scalar (a criterion):
// the rows must match, and the columns must match unless the left-hand side carries a minibatch layout.
// It should only be called on the final validation pass.
func CheckBinaryReduceDims(lhs, rhs MatrixDims, lhsHasLayout bool) error {
	if lhs.Rows == rhs.Rows && (lhsHasLayout || lhs.Cols == rhs.Cols) {
		return nil
	}
	return errors.Wrapf(ErrDimensionMismatch, "operands %s and %s (lhsHasLayout=%v)", lhs, rhs, lhsHasLayout)
}

// BorrowDims returns the dimensions of the operand in, with its unresolved dimensions taken from other.
//
// Columns are only borrowed if in has no minibatch layout: otherwise its columns are given by the layout.
func BorrowDims(in, other MatrixDims, inHasLayout bool) MatrixDims {
	out := in
	if out.Rows == 0 {
		out.Rows = other.Rows
	}
	if !inHasLayout && out.Cols == 0 {
		out.Cols = other.Cols
	}
	return out
}

// ElementwiseRank returns the rank of the tensors used by element-wise operations over a node and its inputs.
//
// It is the maximum of the given sample ranks, where the rank of an operand without a minibatch layout counts
// one extra axis, for its column dimension. sampleRanks and hasLayout must have the same length.
func ElementwiseRank(sampleRanks []int, hasLayout []bool) (rank int, err error) {
	if len(sampleRanks) != len(hasLayout) {
		err = errors.Errorf("ElementwiseRank requires one layout flag per rank, got %d ranks and %d flags",
			len(sampleRanks), len(hasLayout))
		return
	}
	for i, r := range sampleRanks {
		if !hasLayout[i] {
			r++
		}
		rank = max(rank, r)
	}
	return
}
