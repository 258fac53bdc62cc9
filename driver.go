package mbshapes

import (
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Validate infers the shapes and layouts of all nodes of the graph, and checks that they are consistent.
//
// Nodes are validated in topological order (inputs first), in repeated passes until no node changes,
// since the dimensions inferred for a parameter may change nodes already visited in the same pass.
// Then a final pass is run, where all dimensions must be resolved and all mismatches are errors.
//
// It returns ErrCycle if the graph is not acyclic, and ErrNotConverged if shapes are still changing after
// Graph.MaxPasses passes. Any error aborts the validation. On success all nodes are marked as validated.
func (g *Graph) Validate() error {
	order, err := g.topologicalOrder()
	if err != nil {
		return err
	}

	converged := false
	for pass := 1; pass <= g.maxPasses; pass++ {
		var changedNodes []string
		for _, n := range order {
			changed, err := n.Validate(false)
			if err != nil {
				return errors.WithMessagef(err, "graph %q, validation pass #%d", g.name, pass)
			}
			if changed {
				changedNodes = append(changedNodes, n.name)
			}
		}
		klog.V(1).Infof("graph %q: validation pass #%d changed %d nodes", g.name, pass, len(changedNodes))
		if len(changedNodes) == 0 {
			converged = true
			break
		}
		if pass == g.maxPasses {
			return errors.Wrapf(ErrNotConverged, "graph %q after %d passes, nodes still changing: %s",
				g.name, pass, strings.Join(changedNodes, ", "))
		}
	}
	if !converged {
		return errors.Wrapf(ErrNotConverged, "graph %q: maximum number of passes is %d", g.name, g.maxPasses)
	}

	for _, n := range order {
		if _, err := n.Validate(true); err != nil {
			return errors.WithMessagef(err, "graph %q, final validation pass", g.name)
		}
	}
	for _, n := range order {
		n.validated = true
	}
	klog.V(1).Infof("graph %q: validated %d nodes", g.name, len(order))
	return nil
}

// topologicalOrder returns all the nodes of the graph ordered such that every node comes after its inputs.
// Ties are broken by the order of creation.
func (g *Graph) topologicalOrder() ([]*Node, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	status := make(map[*Node]int, len(g.nodes))
	order := make([]*Node, 0, len(g.nodes))
	var visit func(n *Node, path []string) error
	visit = func(n *Node, path []string) error {
		switch status[n] {
		case done:
			return nil
		case visiting:
			return errors.Wrapf(ErrCycle, "graph %q: %s -> %s", g.name, strings.Join(path, " -> "), n.name)
		}
		status[n] = visiting
		path = append(path, n.name)
		for _, input := range n.inputs {
			if input == nil {
				continue
			}
			if err := visit(input, path); err != nil {
				return err
			}
		}
		status[n] = done
		order = append(order, n)
		return nil
	}
	for _, n := range g.nodes {
		if err := visit(n, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}
