// Package mbshapes infers and validates the shapes and minibatch layouts of the nodes of a computation graph.
//
// Each node of a Graph holds an operation (see package opkinds) whose output is a matrix: each column is
// one sample, with a tensor "sample shape", and the columns of nodes holding minibatch data are organized by
// a minibatch layout (see package mblayout) shared by identity among all nodes holding the same minibatch.
//
// Shapes are derived from the inputs of each node, according to its operation, over multiple passes, since
// some dimensions (e.g. of parameters declared without dimensions) are only known once their consumers are
// visited. A dimension of 0 means "not yet resolved". See Graph.Validate and Node.Validate.
//
// Once validated, nodes also provide the tensor geometry used to allocate and index their values, see
// Node.TensorShape and Node.TensorSliceFor.
package mbshapes

// Generates the Graph methods for each operation kind.
//go:generate go run ./internal/cmd/ops_generator
