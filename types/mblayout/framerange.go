package mblayout

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFrameOutOfRange is returned when a FrameRange selects time steps or sequences outside of a layout.
var ErrFrameOutOfRange = errors.New("frame range out of the minibatch layout")

// allSequences marks a FrameRange that selects every parallel sequence.
const allSequences = -1

// FrameRange selects a slice of a minibatch: either all frames, or a range of time steps optionally
// restricted to one parallel sequence.
//
// The zero value is not valid: use AllFrames or AtTime.
type FrameRange struct {
	allFrames bool
	timeIdx   int
	timeRange int
	seqIdx    int
}

// AllFrames returns a FrameRange that selects the whole minibatch.
func AllFrames() FrameRange {
	return FrameRange{allFrames: true, timeRange: 1, seqIdx: allSequences}
}

// AtTime returns a FrameRange that selects time step t of all parallel sequences.
func AtTime(t int) FrameRange {
	return FrameRange{timeIdx: t, timeRange: 1, seqIdx: allSequences}
}

// WithTimeRange returns a copy of the FrameRange selecting n consecutive time steps from its time step.
func (fr FrameRange) WithTimeRange(n int) FrameRange {
	fr.timeRange = n
	return fr
}

// WithSequence returns a copy of the FrameRange restricted to the parallel sequence seq.
func (fr FrameRange) WithSequence(seq int) FrameRange {
	fr.seqIdx = seq
	return fr
}

// IsAllFrames returns whether the FrameRange selects every time step.
func (fr FrameRange) IsAllFrames() bool { return fr.allFrames }

// TimeIdx returns the first selected time step. Meaningless if IsAllFrames.
func (fr FrameRange) TimeIdx() int { return fr.timeIdx }

// TimeRange returns the number of selected time steps. Meaningless if IsAllFrames.
func (fr FrameRange) TimeRange() int { return fr.timeRange }

// SeqIdx returns the selected parallel sequence, or -1 if all of them are selected.
func (fr FrameRange) SeqIdx() int { return fr.seqIdx }

// String implements fmt.Stringer.
func (fr FrameRange) String() string {
	seq := "*"
	if fr.seqIdx != allSequences {
		seq = fmt.Sprintf("%d", fr.seqIdx)
	}
	if fr.allFrames {
		return fmt.Sprintf("FrameRange(all, seq=%s)", seq)
	}
	return fmt.Sprintf("FrameRange(t=[%d, %d), seq=%s)", fr.timeIdx, fr.timeIdx+fr.timeRange, seq)
}

// TensorSliceFor returns the per-axis range [begin, end) of the tensor with the given dimensions that
// holds the frames selected by fr.
//
// If layout is not nil, the last two axes of dims must be the parallel sequence and the time step axes
// (see how a node appends them to its sample shape). Without a layout the value has no time axis: it is
// the same for every frame, and the full range is returned.
func TensorSliceFor(dims []int, fr FrameRange, layout *MBLayout) (begin, end []int, err error) {
	begin = make([]int, len(dims))
	end = make([]int, len(dims))
	copy(end, dims)
	if layout == nil {
		return
	}
	rank := len(dims)
	if rank < 2 {
		err = errors.Errorf("tensor with layout %s must have at least the sequence and time axes, got dimensions %v", layout, dims)
		return
	}
	seqAxis, timeAxis := rank-2, rank-1
	if dims[seqAxis] != layout.NumParallelSequences() || dims[timeAxis] != layout.NumTimeSteps() {
		err = errors.Errorf("tensor dimensions %v don't match the trailing axes of layout %s", dims, layout)
		return
	}
	if !fr.allFrames {
		if fr.timeRange <= 0 || fr.timeIdx < 0 || fr.timeIdx+fr.timeRange > layout.NumTimeSteps() {
			err = errors.Wrapf(ErrFrameOutOfRange, "%s in layout %s", fr, layout)
			return
		}
		begin[timeAxis] = fr.timeIdx
		end[timeAxis] = fr.timeIdx + fr.timeRange
	}
	if fr.seqIdx != allSequences {
		if fr.seqIdx < 0 || fr.seqIdx >= layout.NumParallelSequences() {
			err = errors.Wrapf(ErrFrameOutOfRange, "%s in layout %s", fr, layout)
			return
		}
		begin[seqAxis] = fr.seqIdx
		end[seqAxis] = fr.seqIdx + 1
	}
	return
}
