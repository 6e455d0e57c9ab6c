/*
Package rbdbg implements helpers to debug red-black trees.

Persistent trees share most of their nodes between versions. ToGraphViz
therefore accepts any number of tree versions and draws every node only once,
making structural sharing visible.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/fpset/persistent/rbtree"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'fp.rbdbg'.
func tracer() tracing.Trace {
	return tracing.Select("fp.rbdbg")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname    string
	NodeTmpl    *template.Template
	EdgeTmpl    *template.Template
	VersionTmpl *template.Template
}

// ToGraphViz outputs a diagram for one or more versions of a tree. The diagram
// is in GraphViz (DOT) format. Every version gets a labeled entry node
// pointing to its root. Nodes shared between versions are drawn once.
func ToGraphViz[T any](w io.Writer, trees ...rbtree.Tree[T]) error {
	tmpl, err := template.New("rbtree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("rbnode").Funcs(
		template.FuncMap{
			"fillcolor": fillColor,
		}).Parse(rbNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("rbedge").Parse(rbEdgeTmpl))
	gparams.VersionTmpl = template.Must(template.New("version").Parse(versionTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph[T]{w: w, dict: make(map[*rbtree.Node[T]]string, 64), params: &gparams}
	for i, tree := range trees {
		v := version{Name: fmt.Sprintf("v%d", i), Label: fmt.Sprintf("#%d", i)}
		if root, ok := tree.(*rbtree.Node[T]); ok {
			name, err := g.nodes(root)
			if err != nil {
				return err
			}
			v.Root = name
		}
		if err = gparams.VersionTmpl.Execute(w, v); err != nil {
			return err
		}
	}
	tracer().Debugf("%d tree versions with %d distinct nodes", len(trees), len(g.dict))
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a testing.T and some tree versions,
// it will create a GraphViz image of the trees and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty[T any](t *testing.T, trees ...rbtree.Tree[T]) {
	tmpfile, err := os.CreateTemp(".", "rbtree.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing red-black digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(tmpfile, trees...); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// Print renders a tree as an indented text tree, one node per line, showing
// color, value and stored black-height of every node.
func Print[T any](tree rbtree.Tree[T]) string {
	p := tp.New()
	printNode(p, tree)
	return p.String()
}

func printNode[T any](p tp.Tree, tree rbtree.Tree[T]) {
	n, ok := tree.(*rbtree.Node[T])
	if !ok {
		p.AddNode("·")
		return
	}
	label := fmt.Sprintf("%s:%v ⟨%d⟩", n.Color(), n.Value(), n.BlackHeight())
	if n.Left().IsEmpty() && n.Right().IsEmpty() {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	printNode(branch, n.Left())
	printNode(branch, n.Right())
}

// --- Graph walking ---------------------------------------------------------

type graph[T any] struct {
	w      io.Writer
	dict   map[*rbtree.Node[T]]string
	params *graphParamsType
}

type node struct {
	Name   string
	Label  string
	Color  rbtree.Color
	Height uint32
}

type edge struct {
	From, To string
	Port     string
}

type version struct {
	Name, Label, Root string
}

// nodes outputs n and its subtrees, unless n has been visited before.
// It returns the DOT name of n.
func (g *graph[T]) nodes(n *rbtree.Node[T]) (string, error) {
	if name, ok := g.dict[n]; ok {
		return name, nil
	}
	name := fmt.Sprintf("node%05d", len(g.dict)+1)
	g.dict[n] = name
	label := fmt.Sprintf("%v", n.Value())
	if err := g.params.NodeTmpl.Execute(g.w, node{name, label, n.Color(), n.BlackHeight()}); err != nil {
		return name, err
	}
	for _, child := range []struct {
		t    rbtree.Tree[T]
		port string
	}{{n.Left(), "sw"}, {n.Right(), "se"}} {
		ch, ok := child.t.(*rbtree.Node[T])
		if !ok {
			continue
		}
		chname, err := g.nodes(ch)
		if err != nil {
			return name, err
		}
		if err = g.params.EdgeTmpl.Execute(g.w, edge{name, chname, child.port}); err != nil {
			return name, err
		}
	}
	return name, nil
}

func fillColor(c rbtree.Color) string {
	if c == rbtree.Red {
		return "firebrick3"
	}
	return "gray15"
}

// --- Templates -------------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false ordering="out"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const rbNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} xlabel="{{ .Height }}" shape=circle style=filled fillcolor={{ fillcolor .Color }} fontcolor=white ] ;
`

const rbEdgeTmpl = `{{ .From }}:{{ .Port }} -> {{ .To }} ;
`

const versionTmpl = `{{ .Name }}	[ label="{{ .Label }}" shape=box style=filled fillcolor=lightblue3 ] ;
{{ if .Root }}{{ .Name }} -> {{ .Root }} [ style=dashed ] ;
{{ end }}`
