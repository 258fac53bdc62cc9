package mbshapes

import (
	"github.com/gomlx/mbshapes/shapeinference"
	"github.com/gomlx/mbshapes/types/mblayout"
	"github.com/pkg/errors"
)

// Errors returned by validation. They are wrapped with the context of the node (name, operation kind,
// offending peer and dimensions), use errors.Is to check for them.
//
// ErrDimensionMismatch and ErrInvalidBroadcast are only returned on the final validation pass: on earlier
// passes the dimensions may still be unresolved. All others are structural errors in the graph and are
// returned on any pass.
var (
	// ErrLayoutMismatch is returned when two inputs of a node carry distinct minibatch layouts.
	ErrLayoutMismatch = errors.New("inconsistent minibatch layouts")

	// ErrDimensionMismatch is returned when the (rows x columns) of two operands are incompatible.
	ErrDimensionMismatch = shapeinference.ErrDimensionMismatch

	// ErrInvalidBroadcast is returned when the sample shapes of two operands can't be broadcast.
	ErrInvalidBroadcast = shapeinference.ErrInvalidBroadcast

	// ErrEmptyInferredDimension is returned when a parameter's dimensions are inferred from a peer whose
	// dimensions are still unresolved.
	ErrEmptyInferredDimension = errors.New("inferred dimensions must not be empty")

	// ErrUnresolvedDimension is returned on the final pass for a node whose dimensions are still 0.
	ErrUnresolvedDimension = errors.New("unresolved dimension")

	// ErrInvalidInputCount is returned when a node has the wrong number of inputs for its operation kind.
	ErrInvalidInputCount = errors.New("invalid number of inputs")

	// ErrInputNotSet is returned on the final pass for a node with an input that was never wired.
	ErrInputNotSet = errors.New("input not set")

	// ErrNotConverged is returned by Graph.Validate if shapes are still changing after the maximum number
	// of passes.
	ErrNotConverged = errors.New("shape inference did not converge")

	// ErrCycle is returned by Graph.Validate if the graph is not acyclic.
	ErrCycle = errors.New("computation graph has a cycle")

	// ErrFrameOutOfRange is returned when a FrameRange selects frames outside of a node's layout.
	ErrFrameOutOfRange = mblayout.ErrFrameOutOfRange
)
