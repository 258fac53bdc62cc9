package mbshapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mbshapes/types/mblayout"
	"github.com/gomlx/mbshapes/types/opkinds"
	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/pkg/errors"
)

// DefaultMaxPasses is the default limit on the number of non-final validation passes, see Graph.WithMaxPasses.
const DefaultMaxPasses = 20

// Graph holds the nodes of a computation graph whose shapes are to be inferred.
// See details in New.
type Graph struct {
	name string

	// nodes in order of creation.
	nodes      []*Node
	nameToNode map[string]*Node

	// maxPasses is the maximum number of non-final validation passes.
	maxPasses int

	// dtype of new nodes.
	dtype dtypes.DType
}

// New creates a new empty Graph.
//
// Nodes are added with Graph.Input, Graph.Parameter, Graph.Constant for the leaves, and Graph.AddNode or one of
// the per-operation methods (Graph.Plus, Graph.Sigmoid, ...) for the operations. Inputs of operations can be
// left nil and wired later with Node.SetInput.
//
// Once the graph is wired, call Graph.Validate to infer the shapes and layouts of all nodes.
func New(name string) *Graph {
	return &Graph{
		name:       name,
		nameToNode: make(map[string]*Node),
		maxPasses:  DefaultMaxPasses,
		dtype:      dtypes.Float32,
	}
}

// WithMaxPasses sets the maximum number of non-final validation passes, after which Graph.Validate
// gives up with ErrNotConverged. The default is DefaultMaxPasses.
func (g *Graph) WithMaxPasses(n int) *Graph {
	g.maxPasses = n
	return g
}

// WithDType sets the data type of the nodes created afterwards. The default is dtypes.Float32.
func (g *Graph) WithDType(dtype dtypes.DType) *Graph {
	g.dtype = dtype
	return g
}

// Name of the graph.
func (g *Graph) Name() string { return g.name }

// MaxPasses returns the maximum number of non-final validation passes.
func (g *Graph) MaxPasses() int { return g.maxPasses }

// DType returns the data type used for new nodes.
func (g *Graph) DType() dtypes.DType { return g.dtype }

// Nodes returns the nodes of the graph, in order of creation.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// NodeByName returns the node with the given name, or nil if there is none.
func (g *Graph) NodeByName(name string) *Node { return g.nameToNode[name] }

// AddNode adds a node of the given kind to the graph.
//
// If name is empty, a unique name is generated from the kind (e.g. "plus_3"). The number of inputs must match
// the kind, but individual inputs may be nil, to be set later with Node.SetInput.
//
// The node is created with unresolved dimensions. Nodes of kind LearnableParameter get an empty value, sized
// when their dimensions are inferred.
func (g *Graph) AddNode(kind opkinds.OpKind, name string, inputs ...*Node) (*Node, error) {
	if !kind.IsAOpKind() || kind.Category() == opkinds.CategoryInvalid {
		return nil, errors.Errorf("invalid operation kind %s for node %q", kind, name)
	}
	if want := kind.NumInputs(); len(inputs) != want {
		return nil, errors.Wrapf(ErrInvalidInputCount, "%s operation requires %d inputs, got %d", kind, want, len(inputs))
	}
	for i, input := range inputs {
		if input != nil && input.graph != g {
			return nil, errors.Errorf("input #%d (%s) of %s operation belongs to graph %q, not %q",
				i, input.name, kind, input.graph.name, g.name)
		}
	}
	if name == "" {
		name = g.uniqueName(kind)
	} else if _, found := g.nameToNode[name]; found {
		return nil, errors.Errorf("graph %q already has a node named %q", g.name, name)
	}
	n := &Node{
		graph:  g,
		name:   name,
		kind:   kind,
		dtype:  g.dtype,
		inputs: slices.Clone(inputs),
	}
	if kind == opkinds.LearnableParameter {
		var err error
		n.value, err = NewValue(g.dtype, 0, 0)
		if err != nil {
			return nil, errors.WithMessagef(err, "creating value for %s", name)
		}
	}
	g.nodes = append(g.nodes, n)
	g.nameToNode[name] = n
	return n, nil
}

// uniqueName generates a node name from the kind not yet used in the graph.
func (g *Graph) uniqueName(kind opkinds.OpKind) string {
	for i := len(g.nodes); ; i++ {
		name := fmt.Sprintf("%s_%d", kind.SnakeName(), i)
		if _, found := g.nameToNode[name]; !found {
			return name
		}
	}
}

// Input adds a node holding minibatch data fed to the graph: each column is one sample of the given
// sample shape, and the columns are organized according to layout, which is required.
//
// Nodes sharing the same minibatch must be created with the very same layout.
func (g *Graph) Input(name string, sampleShape shapes.Shape, layout *mblayout.MBLayout) (*Node, error) {
	if layout == nil {
		return nil, errors.Errorf("input %q requires a minibatch layout", name)
	}
	n, err := g.AddNode(opkinds.InputValue, name)
	if err != nil {
		return nil, err
	}
	n.setDims(sampleShape, layout.NumCols())
	n.layout = layout
	return n, nil
}

// Parameter adds a learnable parameter with a (rows x cols) zero-initialized value.
//
// If rows is 0 the parameter is left unsized, and its dimensions will be inferred from the first
// element-wise or criterion operation that consumes it.
func (g *Graph) Parameter(name string, rows, cols int) (*Node, error) {
	if rows == 0 {
		return g.ParameterWithShape(name, shapes.Shape{}, cols)
	}
	return g.ParameterWithShape(name, shapes.Make(rows), cols)
}

// ParameterWithShape adds a learnable parameter whose columns have the given sample shape.
// Its value is a zero-initialized (sampleShape.Size() x cols) matrix.
func (g *Graph) ParameterWithShape(name string, sampleShape shapes.Shape, cols int) (*Node, error) {
	if cols < 0 {
		return nil, errors.Errorf("parameter %q cannot have %d columns", name, cols)
	}
	n, err := g.AddNode(opkinds.LearnableParameter, name)
	if err != nil {
		return nil, err
	}
	n.setDims(sampleShape, cols)
	if err = n.value.Resize(n.numRows, cols); err != nil {
		return nil, errors.WithMessagef(err, "parameter %q", name)
	}
	return n, nil
}

// ParameterFromValue adds a learnable parameter initialized with the given data: a slice of rows
// (e.g. [][]float32{{1, 2}, {3, 4}}), or a flat slice taken as a single column.
//
// The data type of the parameter is taken from the data: integer values are converted to float64.
func (g *Graph) ParameterFromValue(name string, data any) (*Node, error) {
	value, err := ValueFromAny(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "parameter %q", name)
	}
	n, err := g.AddNode(opkinds.LearnableParameter, name)
	if err != nil {
		return nil, err
	}
	rows, cols := value.Dims()
	n.dtype = value.DType()
	n.value = value
	n.setDims(shapes.Make(rows), cols)
	return n, nil
}

// Constant adds a node with a fixed value, with cols columns of the given sample shape.
// Its value is not stored in the graph.
func (g *Graph) Constant(name string, sampleShape shapes.Shape, cols int) (*Node, error) {
	if cols < 0 {
		return nil, errors.Errorf("constant %q cannot have %d columns", name, cols)
	}
	n, err := g.AddNode(opkinds.Constant, name)
	if err != nil {
		return nil, err
	}
	n.setDims(sampleShape, cols)
	return n, nil
}
