package mbshapes

import (
	"github.com/dustin/go-humanize"
	"github.com/gomlx/mbshapes/shapeinference"
	"github.com/gomlx/mbshapes/types/opkinds"
	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// inferBinaryInputDims is a limited inference of the dimensions of the first two inputs of the node: if
// the dimensions of one input are not resolved, they are assumed to be the same as the other input's.
//
// Only parameters not yet sized can be changed: other nodes are left untouched. It returns whether any
// input parameter was resized, in which case validation must be run again, since the parameter and its
// other consumers were possibly validated with the old dimensions.
func (n *Node) inferBinaryInputDims() (changed bool, err error) {
	for index := range 2 {
		in, other := n.inputs[index], n.inputs[1-index]
		dims := shapeinference.BorrowDims(in.matrixDims(), other.matrixDims(), in.HasMBLayout())
		var resized bool
		resized, err = n.inferInputDims(index, dims)
		if err != nil {
			return
		}
		changed = changed || resized
	}
	return
}

// inferInputDims resizes the index-th input to dims, if it is a parameter whose dimensions are not resolved.
//
// The parameter's sample shape becomes a vector of dims.Rows elements (any multi-dimensional shape declared
// for it is lost), and its value is zero-initialized, overwriting any initialization it had.
func (n *Node) inferInputDims(index int, dims shapeinference.MatrixDims) (resized bool, err error) {
	in := n.inputs[index]
	if in.kind != opkinds.LearnableParameter || in.numRows != 0 {
		return
	}
	if dims.Rows == 0 || dims.Cols == 0 {
		err = errors.Wrapf(ErrEmptyInferredDimension,
			"%s %s operation: cannot infer dimensions of input #%d %s %s, got %s",
			n.name, n.kind, index, in.name, in.kind, dims)
		return
	}
	in.setDims(shapes.Make(dims.Rows), dims.Cols)
	if err = in.value.Resize(dims.Rows, dims.Cols); err != nil {
		err = errors.WithMessagef(err, "%s %s operation: resizing inferred input %s", n.name, n.kind, in.name)
		return
	}
	in.value.SetConstant(0)
	klog.Infof("%s %s operation inferred, resized to %s (%s elements), and initialized to 0",
		in.name, in.kind, dims, humanize.Comma(int64(in.value.Len())))
	resized = true
	return
}
