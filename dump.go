package mbshapes

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// DumpNodeInfo writes the node's name, operation kind, and its inputs names (with "NULL" for inputs not
// set yet), for debugging. E.g.: "\nsum=Plus(x,NULL)".
func (n *Node) DumpNodeInfo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s=%s", n.name, n.kind); err != nil {
		return err
	}
	if n.IsLeaf() {
		return nil
	}
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, input := range n.inputs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(nameOrNull(input))
	}
	buf.WriteByte(')')
	_, err := w.Write(buf.Bytes())
	return err
}

// Write a human-readable description of all the nodes of the graph to the given writer: for each node its
// inputs, sample shape, columns and layout.
//
// Nodes are listed with their inputs first. If the graph has a cycle they are listed in order of creation.
func (g *Graph) Write(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	order, cycleErr := g.topologicalOrder()
	if cycleErr != nil {
		order = g.nodes
	}
	w("graph %q (%d nodes)", g.name, len(order))
	for _, n := range order {
		if err != nil {
			break
		}
		err = n.DumpNodeInfo(writer)
		w(": %s x %d", n.sampleShape, n.numCols)
		if n.layout != nil {
			w(" %s", n.layout)
		}
		if n.value != nil {
			w(" (%s elements of %s)", humanize.Comma(int64(n.value.Len())), n.value.DType())
		}
	}
	w("\n")
	return err
}

// String implements fmt.Stringer, see Graph.Write.
func (g *Graph) String() string {
	var buf bytes.Buffer
	if err := g.Write(&buf); err != nil {
		return fmt.Sprintf("Graph(%q): failed to write: %v", g.name, err)
	}
	return buf.String()
}
