package mbshapes

import (
	"github.com/gomlx/mbshapes/shapeinference"
	"github.com/gomlx/mbshapes/types/mblayout"
	"github.com/gomlx/mbshapes/types/opkinds"
	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Validate derives the node's shape and layout from its inputs, according to its operation kind,
// and checks that the inputs are compatible.
//
// It is meant to be called repeatedly, over all nodes in topological order, until no shape changes, and
// then once more with isFinalPass set: see Graph.Validate. On non-final passes dimension mismatches are
// tolerated, since they may be caused by dimensions not yet resolved.
//
// It returns whether the node's shape or layout changed, or whether any of its input parameters had its
// dimensions inferred: in either case the graph must be validated again. Calling it again with the same
// inputs returns changed=false.
func (n *Node) Validate(isFinalPass bool) (changed bool, err error) {
	before := n.state()
	var inferred bool
	switch n.kind.Category() {
	case opkinds.Leaf:
		err = n.validateLeaf()
	case opkinds.UnaryMap:
		err = n.validateUnaryMap(isFinalPass)
	case opkinds.BinaryZip:
		inferred, err = n.validateBinaryZip(isFinalPass)
	case opkinds.UnaryReduce:
		err = n.validateUnaryReduce(isFinalPass)
	case opkinds.BinaryReduce:
		inferred, err = n.validateBinaryReduce(isFinalPass)
	default:
		err = errors.Errorf("%s has invalid operation kind %s", n.name, n.kind)
	}
	if err != nil {
		return
	}
	if isFinalPass {
		if err = n.checkResolved(); err != nil {
			return
		}
	}
	changed = inferred || !before.equal(n.state())
	if klog.V(2).Enabled() && changed {
		klog.Infof("validated %s (final=%v)", n, isFinalPass)
	}
	return
}

// checkInputs checks the number of inputs, and returns whether they are all set.
// Unset inputs are an error only on the final pass.
func (n *Node) checkInputs(isFinalPass bool) (allSet bool, err error) {
	if want := n.kind.NumInputs(); len(n.inputs) != want {
		err = errors.Wrapf(ErrInvalidInputCount, "%s %s operation requires %d inputs, got %d",
			n.name, n.kind, want, len(n.inputs))
		return
	}
	for i, input := range n.inputs {
		if input == nil {
			if isFinalPass {
				err = errors.Wrapf(ErrInputNotSet, "input #%d of %s %s operation", i, n.name, n.kind)
			}
			return
		}
	}
	allSet = true
	return
}

// checkResolved rejects 0 as a final dimension.
func (n *Node) checkResolved() error {
	if !n.sampleShape.IsResolved() || n.numRows <= 0 || n.numCols <= 0 {
		return errors.Wrapf(ErrUnresolvedDimension, "%s %s operation has sample shape %s and %d columns",
			n.name, n.kind, n.sampleShape, n.numCols)
	}
	if n.value != nil {
		if rows, cols := n.value.Dims(); rows != n.numRows || cols != n.numCols {
			return errors.Errorf("%s %s operation: value dimensions (%d x %d) don't match the node's (%d x %d)",
				n.name, n.kind, rows, cols, n.numRows, n.numCols)
		}
	}
	return nil
}

// validateLeaf: leaves have their shape declared at creation or inferred by their consumers,
// and parameters never hold minibatch data.
func (n *Node) validateLeaf() error {
	if len(n.inputs) != 0 {
		return errors.Wrapf(ErrInvalidInputCount, "%s %s operation takes no inputs, got %d", n.name, n.kind, len(n.inputs))
	}
	if n.kind != opkinds.InputValue {
		n.layout = nil
	}
	return nil
}

// validateUnaryMap validates a single input mapped element-wise (e.g. Sigmoid).
func (n *Node) validateUnaryMap(isFinalPass bool) error {
	allSet, err := n.checkInputs(isFinalPass)
	if err != nil {
		return err
	}
	if err = n.inferMBLayoutFromInputs(); err != nil {
		return err
	}
	if !allSet {
		return nil
	}
	n.setDimsFrom(n.inputs[0])
	return nil
}

// validateBinaryZip validates a binary element-wise operation (e.g. Plus), with broadcasting.
//
// If the kind allows multiples, one operand can be a sub-dimension of the other. Unsized parameters
// are resized to match the other operand, in which case inferred is returned as true.
func (n *Node) validateBinaryZip(isFinalPass bool) (inferred bool, err error) {
	var allSet bool
	allSet, err = n.checkInputs(isFinalPass)
	if err != nil {
		return
	}
	if err = n.inferMBLayoutFromInputs(); err != nil {
		return
	}
	if !allSet {
		return
	}
	inferred, err = n.inferBinaryInputDims()
	if err != nil {
		return
	}

	in0, in1 := n.inputs[0], n.inputs[1]
	var sampleShape shapes.Shape
	sampleShape, err = shapeinference.BroadcastSampleShapes(in0.sampleShape, in1.sampleShape, isFinalPass)
	if err != nil {
		err = errors.WithMessagef(err, "%s %s operation: input %s and %s are not compatible",
			n.name, n.kind, in0.name, in1.name)
		return
	}
	if isFinalPass {
		err = shapeinference.CheckBinaryZipDims(in0.matrixDims(), in1.matrixDims(),
			mblayout.SameLayout(in0.layout, in1.layout), n.HasMBLayout(), n.kind.AllowsMultiples())
		if err != nil {
			err = errors.WithMessagef(err, "%s %s operation: input %s and %s", n.name, n.kind, in0.name, in1.name)
			return
		}
	}

	cols := max(in0.numCols, in1.numCols)
	if n.layout != nil {
		cols = n.layout.NumCols()
	}
	n.setDims(sampleShape, cols)
	return
}

// validateUnaryReduce validates a reduction of its input to a scalar (e.g. MatrixL1Reg).
func (n *Node) validateUnaryReduce(isFinalPass bool) error {
	if _, err := n.checkInputs(isFinalPass); err != nil {
		return err
	}
	n.layout = nil // This node does not hold minibatch data.
	n.setDims(shapes.Scalar(), 1)
	return nil
}

// validateBinaryReduce validates a reduction of two inputs to a scalar (e.g. a criterion like
// CrossEntropyWithSoftmax). It also infers unsized input parameters, for instance when a parameter
// is regularized by the criterion and used elsewhere.
func (n *Node) validateBinaryReduce(isFinalPass bool) (inferred bool, err error) {
	var allSet bool
	allSet, err = n.checkInputs(isFinalPass)
	if err != nil {
		return
	}
	n.layout = nil // This node does not hold minibatch data.
	if allSet {
		inferred, err = n.inferBinaryInputDims()
		if err != nil {
			return
		}
		if isFinalPass {
			in0, in1 := n.inputs[0], n.inputs[1]
			err = shapeinference.CheckBinaryReduceDims(in0.matrixDims(), in1.matrixDims(), in0.HasMBLayout())
			if err != nil {
				err = errors.WithMessagef(err, "%s %s operation: input %s and %s", n.name, n.kind, in0.name, in1.name)
				return
			}
		}
	}
	n.setDims(shapes.Scalar(), 1)
	return
}
