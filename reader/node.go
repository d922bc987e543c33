// Package reader implements the external "reader" collaborator of §6.1: it
// lexes and parses source text per the given PEG grammar into a generic
// tagged syntax tree, without any knowledge of the value model. Converting
// that tree into values is the job of package eval's tree ingestion (§4.1).
package reader

import "strings"

// Node is one node of the untyped syntax tree the reader produces: a tag
// naming the grammar rule that matched, literal Contents for a leaf, or an
// ordered Children slice for a rule that matched a sequence of sub-rules.
type Node struct {
	Tag      string
	Contents string
	Children []*Node
	Line     int
	Col      int
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// TagContains reports whether the node's tag contains the given substring,
// matching the "tag contains X" ingestion rules of §4.1.
func (n *Node) TagContains(sub string) bool { return strings.Contains(n.Tag, sub) }
