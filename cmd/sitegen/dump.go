package main

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
	"github.com/rgonek/sitegen/htmlnode"
	"github.com/rgonek/sitegen/markdown"
)

// dumpNode is a plain mirror of an htmlnode tree for pretty printing.
type dumpNode struct {
	Tag      string
	Value    *string
	Attrs    []htmlnode.Attribute
	Children []dumpNode
}

func toDumpNode(node htmlnode.Node) dumpNode {
	switch n := node.(type) {
	case *htmlnode.Leaf:
		d := dumpNode{Tag: n.Tag(), Attrs: n.Attrs().List()}
		if value, ok := n.Value(); ok {
			d.Value = &value
		}
		return d
	case *htmlnode.Parent:
		d := dumpNode{Tag: n.Tag(), Attrs: n.Attrs().List()}
		for _, child := range n.Children() {
			d.Children = append(d.Children, toDumpNode(child))
		}
		return d
	default:
		return dumpNode{Tag: fmt.Sprintf("<unknown %T>", node)}
	}
}

// dumpDocument compiles document and pretty prints its node tree to stdout
// and any compile warnings to stderr.
func dumpDocument(document string, stdout, stderr io.Writer) error {
	result, err := markdown.Convert(document)
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(stderr, "warning: block %d (%s): %s: %s\n", w.Block+1, w.BlockType, w.Type, w.Message)
	}

	_, err = pp.Fprintln(stdout, toDumpNode(result.Root))
	return err
}
