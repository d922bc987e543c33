package eval

import (
	"strconv"

	lval "github.com/lispy-run/lispy"
	"github.com/lispy-run/lispy/reader"
)

var punctuation = map[string]bool{
	"(": true, ")": true, "{": true, "}": true, "[": true, "]": true,
}

func isSkippedChild(n *reader.Node) bool {
	if punctuation[n.Contents] {
		return true
	}
	if n.TagContains("comment") {
		return true
	}
	return n.Tag == "regex"
}

// FromSyntax converts the reader's generic syntax tree into a value, per
// the tree-ingestion rules of §4.1. env supplies the live binding of `list`
// so that `[a b]` can desugar directly to an SExpr headed by the builtin
// function value, as the rule requires, rather than by the bare symbol.
func FromSyntax(env *lval.Env, node *reader.Node) lval.Value {
	switch {
	case node.TagContains("integer"):
		n, err := strconv.ParseInt(node.Contents, 10, 64)
		if err != nil {
			return lval.MakeError("invalid integer")
		}
		return lval.MakeInteger(n)

	case node.TagContains("float"):
		f, err := strconv.ParseFloat(node.Contents, 64)
		if err != nil {
			return lval.MakeError("invalid float")
		}
		return lval.MakeFloat(f)

	case node.TagContains("bool"):
		return lval.MakeBoolean(node.Contents == "true")

	case node.TagContains("string"):
		return lval.MakeString(lval.Unescape(stripQuotes(node.Contents)))

	case node.TagContains("symbol"):
		return lval.MakeSymbol(node.Contents)

	case node.Tag == "program" || node.TagContains("sexpr"):
		sx := lval.MakeSExpr()
		for _, child := range node.Children {
			if isSkippedChild(child) {
				continue
			}
			sx.Append(FromSyntax(env, child))
		}
		return sx

	case node.TagContains("list"):
		sx := lval.MakeSExprOf(env.Lookup(lval.SymList))
		for _, child := range node.Children {
			if isSkippedChild(child) {
				continue
			}
			sx.Append(FromSyntax(env, child))
		}
		return sx

	case node.TagContains("qexpr"):
		qx := lval.MakeQExpr()
		for _, child := range node.Children {
			if isSkippedChild(child) {
				continue
			}
			qx.Cells = append(qx.Cells, FromSyntax(env, child))
		}
		return qx

	default:
		return lval.Errorf("unrecognized syntax node %q", node.Tag)
	}
}

func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
