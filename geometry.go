package mbshapes

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/mbshapes/shapeinference"
	"github.com/gomlx/mbshapes/types/mblayout"
	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/pkg/errors"
)

// DetermineElementwiseTensorRank returns the rank of the tensors used to compute an element-wise operation
// over the node and its inputs: the largest sample rank among them, where nodes without a minibatch layout
// count one extra axis for their columns.
//
// Unset inputs are ignored.
func (n *Node) DetermineElementwiseTensorRank() int {
	ranks := []int{n.sampleShape.Rank()}
	hasLayout := []bool{n.HasMBLayout()}
	for _, input := range n.inputs {
		if input == nil {
			continue
		}
		ranks = append(ranks, input.sampleShape.Rank())
		hasLayout = append(hasLayout, input.HasMBLayout())
	}
	rank, err := shapeinference.ElementwiseRank(ranks, hasLayout)
	if err != nil {
		exceptions.Panicf("%s %s operation: %+v", n.name, n.kind, err)
	}
	return rank
}

// TensorShape returns the full shape of the node's value as a tensor.
//
// Without a minibatch layout, it is the sample shape with the number of columns appended as a trailing axis.
// With a layout, the sample shape is padded up to rank, and the number of parallel sequences and of time
// steps are appended as axes rank and rank+1. It fails if rank is smaller than the sample rank.
func (n *Node) TensorShape(rank int) (shapes.Shape, error) {
	if n.layout == nil {
		return n.sampleShape.Append(n.numCols), nil
	}
	shape, err := n.sampleShape.AppendAt(rank, n.layout.NumParallelSequences())
	if err != nil {
		return shapes.Shape{}, errors.WithMessagef(err, "%s %s operation", n.name, n.kind)
	}
	return shape.Append(n.layout.NumTimeSteps()), nil
}

// TensorSliceFor returns the shape of the slice of the node's value holding the frames selected by fr.
//
// The slice is a view: it keeps the strides of the full tensor shape (see TensorShape) and its offset
// points to the first element selected. It fails with ErrFrameOutOfRange if fr selects frames outside
// of the node's layout.
func (n *Node) TensorSliceFor(rank int, fr mblayout.FrameRange) (shapes.Shape, error) {
	shape, err := n.TensorShape(rank)
	if err != nil {
		return shapes.Shape{}, err
	}
	begin, end, err := mblayout.TensorSliceFor(shape.Dimensions, fr, n.layout)
	if err != nil {
		return shapes.Shape{}, errors.WithMessagef(err, "%s %s operation", n.name, n.kind)
	}
	slice, err := shape.NarrowTo(begin, end)
	if err != nil {
		return shapes.Shape{}, errors.WithMessagef(err, "%s %s operation", n.name, n.kind)
	}
	return slice, nil
}
