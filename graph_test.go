package mbshapes

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mbshapes/types/mblayout"
	"github.com/gomlx/mbshapes/types/opkinds"
	"github.com/gomlx/mbshapes/types/shapes"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildHiddenLayer builds tanh(x + b), with b's dimensions to be inferred, and a regularization term.
func buildHiddenLayer(t *testing.T, g *Graph) (x, b, h, act, reg *Node) {
	layout := must.M1(mblayout.New(2, 2))
	x = must.M1(g.Input("x", shapes.Make(7), layout))
	b = must.M1(g.Parameter("b", 0, 0))
	h = must.M1(g.Plus("h", x, b))
	act = must.M1(g.Tanh("act", h))
	reg = must.M1(g.MatrixL1Reg("reg", b))
	return
}

func TestGraphValidate(t *testing.T) {
	t.Run("converges", func(t *testing.T) {
		g := New(t.Name())
		x, b, h, act, reg := buildHiddenLayer(t, g)
		require.NoError(t, g.Validate())

		assert.Equal(t, 7, b.NumRows())
		assert.Equal(t, 4, b.NumCols())
		assert.True(t, b.Value().IsZero())
		assert.Nil(t, b.MBLayout())
		assert.Equal(t, []int{7}, act.SampleShape().Dimensions)
		assert.Equal(t, 4, act.NumCols())
		assert.Same(t, x.MBLayout(), act.MBLayout())
		assert.Equal(t, []int{1}, reg.SampleShape().Dimensions)
		for _, n := range []*Node{x, b, h, act, reg} {
			assert.True(t, n.IsValidated(), "node %s", n)
		}

		// Validated nodes can't be rewired.
		err := h.SetInput(1, x)
		require.Error(t, err)

		// Validating again changes nothing.
		require.NoError(t, g.Validate())
	})

	t.Run("not converged", func(t *testing.T) {
		g := New(t.Name()).WithMaxPasses(1)
		assert.Equal(t, 1, g.MaxPasses())
		_, _, h, _, _ := buildHiddenLayer(t, g)
		err := g.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotConverged))
		assert.Contains(t, err.Error(), "nodes still changing: h, act, reg")
		assert.False(t, h.IsValidated())
	})

	t.Run("input not set", func(t *testing.T) {
		g := New(t.Name())
		x, _, _, _, _ := buildHiddenLayer(t, g)
		sum := must.M1(g.Plus("sum", x, nil))
		err := g.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInputNotSet))
		assert.Contains(t, err.Error(), "final validation pass")
		assert.False(t, sum.IsValidated())
		assert.False(t, x.IsValidated())
	})

	t.Run("layout mismatch", func(t *testing.T) {
		g := New(t.Name())
		x, _, _, _, _ := buildHiddenLayer(t, g)
		y := must.M1(g.Input("y", shapes.Make(7), must.M1(mblayout.New(2, 2))))
		_ = must.M1(g.ElementTimes("prod", x, y))
		err := g.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLayoutMismatch))
		assert.Contains(t, err.Error(), "validation pass #1")
	})

	t.Run("cycle", func(t *testing.T) {
		g := New(t.Name())
		a := must.M1(g.Sigmoid("a", nil))
		b := must.M1(g.Tanh("b", a))
		require.NoError(t, a.SetInput(0, b))
		err := g.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCycle))
		assert.Contains(t, err.Error(), "a -> b -> a")

		// Dumps are still available.
		assert.Contains(t, g.String(), "b=Tanh(a)")
	})
}

func TestGraphNodes(t *testing.T) {
	g := New(t.Name()).WithDType(dtypes.Float64)
	a := must.M1(g.Constant("a", shapes.Make(3), 1))
	b := must.M1(g.Constant("b", shapes.Make(3), 1))
	sum := must.M1(g.Plus("", a, b))
	assert.Equal(t, "plus_2", sum.Name())
	assert.Equal(t, opkinds.Plus, sum.Kind())
	assert.Equal(t, dtypes.Float64, sum.DType())
	assert.Same(t, sum, g.NodeByName("plus_2"))
	assert.Nil(t, g.NodeByName("foo"))
	assert.Len(t, g.Nodes(), 3)
	assert.Equal(t, []*Node{a, b}, sum.Inputs())
	assert.Same(t, g, sum.Graph())

	_, err := g.Plus("a", a, b)
	require.Error(t, err, "duplicate name")

	other := New("other")
	c := must.M1(other.Constant("c", shapes.Make(3), 1))
	_, err = g.Plus("mixed", a, c)
	require.Error(t, err, "inputs from a different graph")
	require.Error(t, sum.SetInput(0, c))
	require.Error(t, sum.SetInput(2, a))

	_, err = g.Input("x", shapes.Make(3), nil)
	require.Error(t, err, "inputs require a layout")

	w := must.M1(g.ParameterWithShape("w", shapes.Make(2, 3), 4))
	assert.Equal(t, 6, w.NumRows())
	rows, cols := w.Value().Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, dtypes.Float64, w.Value().DType())

	p := must.M1(g.ParameterFromValue("p", [][]float32{{1, 2}, {3, 4}, {5, 6}}))
	assert.Equal(t, 3, p.NumRows())
	assert.Equal(t, 2, p.NumCols())
	assert.Equal(t, dtypes.Float32, p.DType())
	assert.Equal(t, 4.0, p.Value().At(1, 1))

	// Every kind that takes inputs can be added with its inputs unset.
	for _, category := range []opkinds.Category{opkinds.UnaryMap, opkinds.BinaryZip, opkinds.UnaryReduce, opkinds.BinaryReduce} {
		for _, kind := range opkinds.KindsOf(category) {
			inputs := make([]*Node, kind.NumInputs())
			n, err := g.AddNode(kind, "", inputs...)
			require.NoError(t, err, "kind %s", kind)
			assert.Equal(t, category, n.Kind().Category())
		}
	}
}

func TestDump(t *testing.T) {
	layout := must.M1(mblayout.New(2, 3))
	g := New("dump")
	x := must.M1(g.Input("x", shapes.Make(4), layout))
	sum := must.M1(g.Plus("sum", x, nil))
	big := must.M1(g.Parameter("big", 1000, 10))

	var buf bytes.Buffer
	require.NoError(t, sum.DumpNodeInfo(&buf))
	assert.Equal(t, "\nsum=Plus(x,NULL)", buf.String())
	buf.Reset()
	require.NoError(t, x.DumpNodeInfo(&buf))
	assert.Equal(t, "\nx=InputValue", buf.String())

	dump := g.String()
	fmt.Printf("%s", dump)
	assert.Contains(t, dump, `graph "dump" (3 nodes)`)
	assert.Contains(t, dump, "\nx=InputValue: [4] x 6")
	assert.Contains(t, dump, "\nsum=Plus(x,NULL): ")
	assert.Contains(t, dump, "10,000 elements")
	assert.Equal(t, "big=LearnableParameter [1000] x 10", big.String())
}
