// ops_generator generates gen_ops.go, with one Graph method per operation kind that takes inputs.
// It should be run from the root of the module, see go:generate in mbshapes.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"text/template"

	"github.com/gomlx/mbshapes/types/opkinds"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

const fileName = "gen_ops.go"

// OpInfo describes one generated method.
type OpInfo struct {
	Kind     string
	Category string
	Inputs   []string
	Multiple bool
}

// inputNames per category.
var inputNames = map[opkinds.Category][]string{
	opkinds.UnaryMap:     {"x"},
	opkinds.BinaryZip:    {"lhs", "rhs"},
	opkinds.UnaryReduce:  {"x"},
	opkinds.BinaryReduce: {"lhs", "rhs"},
}

func buildOps() []OpInfo {
	var ops []OpInfo
	for _, category := range []opkinds.Category{opkinds.UnaryMap, opkinds.BinaryZip, opkinds.UnaryReduce, opkinds.BinaryReduce} {
		for _, kind := range opkinds.KindsOf(category) {
			ops = append(ops, OpInfo{
				Kind:     kind.String(),
				Category: category.String(),
				Inputs:   inputNames[category],
				Multiple: kind.AllowsMultiples(),
			})
		}
	}
	return ops
}

var opsTemplate = template.Must(template.New(fileName).Parse(
	`/***** File generated by ./internal/cmd/ops_generator. Don't edit it directly. *****/

package mbshapes

import "github.com/gomlx/mbshapes/types/opkinds"
{{range .}}
// {{.Kind}} adds a {{.Kind}} ({{.Category}}) operation node to the graph.
{{- if .Multiple}}
// Its operands may have dimensions that are exact multiples of each other.
{{- end}}
// Inputs may be nil, to be set later with Node.SetInput. If name is empty, a unique one is generated.
func (g *Graph) {{.Kind}}(name string{{range .Inputs}}, {{.}}{{end}} *Node) (*Node, error) {
	return g.AddNode(opkinds.{{.Kind}}, name{{range .Inputs}}, {{.}}{{end}})
}
{{end}}`))

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	fullPath := path.Join(must.M1(os.Getwd()), fileName)
	f := must.M1(os.Create(fullPath))
	must.M(opsTemplate.Execute(f, buildOps()))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("ops_generator:\tsuccessfully generated %s\n", fullPath)
}
