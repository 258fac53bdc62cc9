// Package opkinds defines OpKind, the closed set of operations known to the shape/layout inference engine,
// and maps each one of them to the validation rule (Category) that derives its shape.
package opkinds

import (
	"fmt"

	"github.com/gomlx/mbshapes/internal/utils"
)

// OpKind is an enum of all the operations a graph node can hold.
type OpKind int

//go:generate go tool enumer -type=OpKind -output=gen_opkind_enumer.go opkinds.go

const (
	Invalid OpKind = iota

	// Leaves.
	InputValue
	LearnableParameter
	Constant

	// Element-wise, single input.
	Sigmoid
	Tanh
	RectifiedLinear
	Exp
	Log
	Negate
	Abs
	Sqrt
	Square

	// Element-wise, two inputs.
	Plus
	Minus
	ElementTimes
	ElementDivide
	Max
	Min

	// Reductions of one input to a scalar (regularizers).
	MatrixL1Reg
	MatrixL2Reg
	SumElements

	// Reductions of two inputs to a scalar (criteria).
	SquareError
	CrossEntropyWithSoftmax
	ClassificationError

	// Last should always be kept the last, it is used as a counter/marker.
	Last
)

// Category of an OpKind selects the validation rule used to derive a node's shape and layout.
type Category int

const (
	CategoryInvalid Category = iota

	// Leaf nodes have no inputs: their shape is declared or inferred from their consumers.
	Leaf

	// UnaryMap maps one input element-wise: the output has the input's shape.
	UnaryMap

	// BinaryZip combines two inputs element-wise with broadcasting.
	BinaryZip

	// UnaryReduce reduces one input to a scalar, e.g. a regularization penalty.
	UnaryReduce

	// BinaryReduce reduces two inputs to a scalar, e.g. a loss criterion.
	BinaryReduce
)

var (
	categories = map[OpKind]Category{
		InputValue:         Leaf,
		LearnableParameter: Leaf,
		Constant:           Leaf,

		Sigmoid:         UnaryMap,
		Tanh:            UnaryMap,
		RectifiedLinear: UnaryMap,
		Exp:             UnaryMap,
		Log:             UnaryMap,
		Negate:          UnaryMap,
		Abs:             UnaryMap,
		Sqrt:            UnaryMap,
		Square:          UnaryMap,

		Plus:          BinaryZip,
		Minus:         BinaryZip,
		ElementTimes:  BinaryZip,
		ElementDivide: BinaryZip,
		Max:           BinaryZip,
		Min:           BinaryZip,

		MatrixL1Reg: UnaryReduce,
		MatrixL2Reg: UnaryReduce,
		SumElements: UnaryReduce,

		SquareError:             BinaryReduce,
		CrossEntropyWithSoftmax: BinaryReduce,
		ClassificationError:     BinaryReduce,
	}

	// multiplesAllowed lists the BinaryZip kinds where one operand's columns (or rows) may be an
	// exact multiple of the other's.
	multiplesAllowed = utils.SetWith(Plus, Minus)
)

// Category returns the validation rule category of the kind, or CategoryInvalid if the kind is unknown.
func (k OpKind) Category() Category {
	return categories[k]
}

// AllowsMultiples returns whether a BinaryZip kind accepts operands whose dimensions are exact multiples
// of each other.
func (k OpKind) AllowsMultiples() bool {
	return multiplesAllowed.Has(k)
}

// NumInputs returns the number of inputs required by the kind, or -1 for invalid kinds.
func (k OpKind) NumInputs() int {
	return k.Category().NumInputs()
}

// SnakeName returns the snake_case version of the kind name, used to generate node names.
func (k OpKind) SnakeName() string {
	return utils.ToSnakeCase(k.String())
}

// KindsOf returns all the kinds in the given category, in declaration order.
func KindsOf(c Category) []OpKind {
	var kinds []OpKind
	for k := Invalid + 1; k < Last; k++ {
		if categories[k] == c {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// NumInputs returns the number of inputs required by nodes of the category, or -1 for CategoryInvalid.
func (c Category) NumInputs() int {
	switch c {
	case Leaf:
		return 0
	case UnaryMap, UnaryReduce:
		return 1
	case BinaryZip, BinaryReduce:
		return 2
	}
	return -1
}

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryInvalid:
		return "Invalid"
	case Leaf:
		return "Leaf"
	case UnaryMap:
		return "UnaryMap"
	case BinaryZip:
		return "BinaryZip"
	case UnaryReduce:
		return "UnaryReduce"
	case BinaryReduce:
		return "BinaryReduce"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}
