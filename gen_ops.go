/***** File generated by ./internal/cmd/ops_generator. Don't edit it directly. *****/

package mbshapes

import "github.com/gomlx/mbshapes/types/opkinds"

// Sigmoid adds a Sigmoid (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Sigmoid(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Sigmoid, name, x)
}

// Tanh adds a Tanh (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Tanh(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Tanh, name, x)
}

// RectifiedLinear adds a RectifiedLinear (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) RectifiedLinear(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.RectifiedLinear, name, x)
}

// Exp adds a Exp (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Exp(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Exp, name, x)
}

// Log adds a Log (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Log(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Log, name, x)
}

// Negate adds a Negate (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Negate(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Negate, name, x)
}

// Abs adds a Abs (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Abs(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Abs, name, x)
}

// Sqrt adds a Sqrt (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Sqrt(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Sqrt, name, x)
}

// Square adds a Square (UnaryMap) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Square(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.Square, name, x)
}

// Plus adds a Plus (BinaryZip) operation node to the graph.
// Its operands may have dimensions that are exact multiples of each other.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Plus(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.Plus, name, lhs, rhs)
}

// Minus adds a Minus (BinaryZip) operation node to the graph.
// Its operands may have dimensions that are exact multiples of each other.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Minus(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.Minus, name, lhs, rhs)
}

// ElementTimes adds a ElementTimes (BinaryZip) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) ElementTimes(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.ElementTimes, name, lhs, rhs)
}

// ElementDivide adds a ElementDivide (BinaryZip) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) ElementDivide(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.ElementDivide, name, lhs, rhs)
}

// Max adds a Max (BinaryZip) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Max(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.Max, name, lhs, rhs)
}

// Min adds a Min (BinaryZip) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) Min(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.Min, name, lhs, rhs)
}

// MatrixL1Reg adds a MatrixL1Reg (UnaryReduce) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) MatrixL1Reg(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.MatrixL1Reg, name, x)
}

// MatrixL2Reg adds a MatrixL2Reg (UnaryReduce) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) MatrixL2Reg(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.MatrixL2Reg, name, x)
}

// SumElements adds a SumElements (UnaryReduce) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) SumElements(name string, x *Node) (*Node, error) {
	return g.AddNode(opkinds.SumElements, name, x)
}

// SquareError adds a SquareError (BinaryReduce) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) SquareError(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.SquareError, name, lhs, rhs)
}

// CrossEntropyWithSoftmax adds a CrossEntropyWithSoftmax (BinaryReduce) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) CrossEntropyWithSoftmax(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.CrossEntropyWithSoftmax, name, lhs, rhs)
}

// ClassificationError adds a ClassificationError (BinaryReduce) operation node to the graph.
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) ClassificationError(name string, lhs, rhs *Node) (*Node, error) {
	return g.AddNode(opkinds.ClassificationError, name, lhs, rhs)
}
