package mbshapes

import (
	"github.com/gomlx/mbshapes/types/mblayout"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// inferMBLayoutFromInputs installs on the node the minibatch layout shared by its inputs, for the standard
// case of element-wise operations:
//
//   - all inputs with a layout must share the very same layout instance (e.g. adding two minibatches);
//   - inputs without a layout are ignored (e.g. parameters);
//   - all inputs may have no layout, and then neither does the node.
//
// Unset inputs are skipped and logged: their producer was not wired yet.
func (n *Node) inferMBLayoutFromInputs() error {
	var layout *mblayout.MBLayout
	var layoutSource *Node
	for i, input := range n.inputs {
		switch {
		case input == nil:
			klog.Warningf("inferring layout of %s %s operation: input #%d is not set yet", n.name, n.kind, i)
		case input.layout == nil:
			// Parameters and other layout-free values never constrain the result.
		case layout == nil:
			layout = input.layout
			layoutSource = input
		case !mblayout.SameLayout(layout, input.layout):
			return errors.Wrapf(ErrLayoutMismatch,
				"found inconsistent layout in %s %s operation, mismatch detected for input %s %s: %s (from %s) vs %s",
				n.name, n.kind, input.name, input.kind, layout, layoutSource.name, input.layout)
		}
	}
	n.layout = layout
	return nil
}
