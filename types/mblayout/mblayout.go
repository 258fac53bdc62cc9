// Package mblayout defines MBLayout, the minibatch layout that maps the columns of a node's value matrix
// to (parallel sequence, time step) pairs, and FrameRange, a request for a slice of a minibatch.
//
// Layouts are shared by reference between nodes: two nodes carry compatible layouts only if they point to
// the very same *MBLayout (or one of them is nil, meaning "flat data, no sequence structure"). Two distinct
// layouts with the same sizes are considered a conflict. See SameLayout.
package mblayout

import (
	"fmt"

	"github.com/pkg/errors"
)

// MBLayout describes how the columns of a minibatch are organized in parallel sequences and time steps.
//
// Columns are ordered time-major: all parallel sequences of time step 0, then all of time step 1, etc.
// The engine never changes a layout after creation; it only propagates references to it.
type MBLayout struct {
	// numParallelSequences is the number of sequences processed in parallel in the minibatch.
	numParallelSequences int

	// numTimeSteps is the length of the (padded) sequences.
	numTimeSteps int
}

// New creates a new layout with the given number of parallel sequences and time steps.
func New(numParallelSequences, numTimeSteps int) (*MBLayout, error) {
	if numParallelSequences <= 0 || numTimeSteps <= 0 {
		return nil, errors.Errorf("MBLayout requires positive numParallelSequences and numTimeSteps, got %d and %d",
			numParallelSequences, numTimeSteps)
	}
	return &MBLayout{
		numParallelSequences: numParallelSequences,
		numTimeSteps:         numTimeSteps,
	}, nil
}

// NumParallelSequences returns the number of sequences in the minibatch.
func (l *MBLayout) NumParallelSequences() int {
	return l.numParallelSequences
}

// NumTimeSteps returns the number of time steps of the minibatch.
func (l *MBLayout) NumTimeSteps() int {
	return l.numTimeSteps
}

// NumCols returns the number of columns of a matrix with this layout.
func (l *MBLayout) NumCols() int {
	return l.numParallelSequences * l.numTimeSteps
}

// ColumnIndex returns the matrix column holding the given parallel sequence at the given time step.
func (l *MBLayout) ColumnIndex(seq, t int) (int, error) {
	if seq < 0 || seq >= l.numParallelSequences || t < 0 || t >= l.numTimeSteps {
		return 0, errors.Wrapf(ErrFrameOutOfRange, "(sequence=%d, time=%d) in layout %s", seq, t, l)
	}
	return t*l.numParallelSequences + seq, nil
}

// String implements fmt.Stringer. It includes the address, since layouts are compared by identity.
func (l *MBLayout) String() string {
	if l == nil {
		return "MBLayout(nil)"
	}
	return fmt.Sprintf("MBLayout(%p)[%d sequences x %d steps]", l, l.numParallelSequences, l.numTimeSteps)
}

// SameLayout returns whether a and b are the same layout instance. Equal sizes are not enough.
func SameLayout(a, b *MBLayout) bool {
	return a == b
}
