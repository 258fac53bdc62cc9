package mbshapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mbshapes/shapeinference"
	"github.com/gomlx/mbshapes/types/mblayout"
	"github.com/gomlx/mbshapes/types/opkinds"
	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/pkg/errors"
)

// Node is one operation in the computation graph.
//
// Nodes are created unresolved (sample shape of rank 0, 0 rows and 0 columns, no layout), unless declared
// otherwise (see Graph.Input and Graph.Parameter), and their shape and layout are derived from their inputs
// by Node.Validate, according to their operation kind.
type Node struct {
	graph *Graph
	name  string
	kind  opkinds.OpKind
	dtype dtypes.DType

	// inputs are not owned by the node: they are other nodes of the same graph. An input may be nil until
	// it is wired with SetInput.
	inputs []*Node

	// sampleShape is the shape of one column (one sample) of the node's value.
	sampleShape shapes.Shape

	// numRows is the number of elements of sampleShape, or 0 if it is not resolved.
	numRows int

	// numCols is the number of columns: the number of samples in the minibatch.
	numCols int

	// layout is shared with the other nodes holding the same minibatch. Nil for nodes that hold no
	// minibatch data, like parameters.
	layout *mblayout.MBLayout

	// value is only set for parameter nodes.
	value *Value

	// validated is set once the graph passed a final validation pass.
	validated bool
}

// Graph that holds this node.
func (n *Node) Graph() *Graph { return n.graph }

// Name of the node, unique within its graph.
func (n *Node) Name() string { return n.name }

// Kind returns the operation kind of the node.
func (n *Node) Kind() opkinds.OpKind { return n.kind }

// DType returns the element type of the node's value.
func (n *Node) DType() dtypes.DType { return n.dtype }

// Inputs returns a copy of the node's inputs. Entries may be nil if not yet set.
func (n *Node) Inputs() []*Node { return slices.Clone(n.inputs) }

// NumInputs returns the number of inputs of the node, set or not.
func (n *Node) NumInputs() int { return len(n.inputs) }

// Input returns the i-th input of the node, or nil if it is not set yet.
func (n *Node) Input(i int) *Node { return n.inputs[i] }

// IsLeaf returns whether the node has no inputs.
func (n *Node) IsLeaf() bool { return len(n.inputs) == 0 }

// SampleShape returns the shape of one sample (one column) of the node's value.
func (n *Node) SampleShape() shapes.Shape { return n.sampleShape }

// NumRows returns the number of elements of one sample, or 0 if not resolved yet.
func (n *Node) NumRows() int { return n.numRows }

// NumCols returns the number of columns, or 0 if not resolved yet.
func (n *Node) NumCols() int { return n.numCols }

// MBLayout returns the minibatch layout of the node, or nil if the node holds no minibatch data.
func (n *Node) MBLayout() *mblayout.MBLayout { return n.layout }

// HasMBLayout returns whether the node holds minibatch data.
func (n *Node) HasMBLayout() bool { return n.layout != nil }

// Value returns the storage of a parameter node, or nil for other nodes.
func (n *Node) Value() *Value { return n.value }

// IsValidated returns whether the node passed the final validation pass of its graph.
// Validated nodes can no longer be rewired.
func (n *Node) IsValidated() bool { return n.validated }

// matrixDims returns the legacy (rows x columns) view of the node.
func (n *Node) matrixDims() shapeinference.MatrixDims {
	return shapeinference.MatrixDims{Rows: n.numRows, Cols: n.numCols}
}

// SetInput wires the i-th input of the node. It can be used to build graphs whose nodes are
// created before their inputs.
func (n *Node) SetInput(i int, input *Node) error {
	if i < 0 || i >= len(n.inputs) {
		return errors.Wrapf(ErrInvalidInputCount, "%s %s operation has %d inputs, cannot set input #%d",
			n.name, n.kind, len(n.inputs), i)
	}
	if n.validated {
		return errors.Errorf("%s %s operation was already validated, its inputs can no longer be changed", n.name, n.kind)
	}
	if input != nil && input.graph != n.graph {
		return errors.Errorf("cannot set input #%d of %s to %s, it belongs to a different graph", i, n.name, input.name)
	}
	n.inputs[i] = input
	return nil
}

// setDims sets the sample shape and the number of columns. The number of rows is derived from the shape.
func (n *Node) setDims(sampleShape shapes.Shape, cols int) {
	n.sampleShape = sampleShape.Clone()
	n.numRows = 0
	if sampleShape.Rank() > 0 {
		n.numRows = sampleShape.Size()
	}
	n.numCols = cols
}

// setDimsFrom copies the sample shape and the number of columns of another node.
func (n *Node) setDimsFrom(other *Node) {
	n.setDims(other.sampleShape, other.numCols)
}

// nodeState is a snapshot of what validation may change in a node.
type nodeState struct {
	sampleShape shapes.Shape
	cols        int
	layout      *mblayout.MBLayout
}

func (n *Node) state() nodeState {
	return nodeState{sampleShape: n.sampleShape.Clone(), cols: n.numCols, layout: n.layout}
}

func (s nodeState) equal(other nodeState) bool {
	return s.sampleShape.Equal(other.sampleShape) && s.cols == other.cols && s.layout == other.layout
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	s := fmt.Sprintf("%s=%s %s x %d", n.name, n.kind, n.sampleShape, n.numCols)
	if n.layout != nil {
		s += " " + n.layout.String()
	}
	return s
}

// nameOrNull returns the node name, or "NULL" for an unset input.
func nameOrNull(n *Node) string {
	if n == nil {
		return "NULL"
	}
	return n.name
}
