// Package sink defines the DOM sink contract spec.md §4.6 describes: a
// tree builder that only ever creates, appends, and reparents nodes through
// this interface (never inspecting a node's structure directly) could sit
// in front of any DOM representation -- a reference-counted tree, an arena
// of indices, generational handles. DOMSink is the reference implementation,
// built the same way treebuilder.TreeBuilder already manipulates dom.*
// directly; treebuilder itself is not rewired through this interface (see
// DESIGN.md).
package sink

import (
	"github.com/servo/justhtml5/dom"
	"github.com/servo/justhtml5/internal/constants"
	"github.com/servo/justhtml5/tokenizer"
)

// NodeOrText carries either a node handle or literal text, mirroring the
// html5ever Append* calls that accept either.
type NodeOrText struct {
	Node dom.Node
	Text string
}

// ElementFlags conveys the self-closing and "this is a template" bits a
// CreateElement call needs, per spec.md §4.6.
type ElementFlags struct {
	SelfClosing bool
	Template    bool
}

// TreeSink is the consumer interface the tree builder invokes. Handles
// (dom.Node / *dom.Element) are opaque to the tree builder: it only ever
// compares them via SameNode and inspects them via ElemName, exactly as
// spec.md §4.6 requires.
type TreeSink interface {
	GetDocument() *dom.Document
	CreateElement(name constants.Name, attrs []tokenizer.Attr, flags ElementFlags) *dom.Element
	CreateComment(text string) dom.Node
	CreatePI(target, data string) dom.Node

	Append(parent dom.Node, child NodeOrText)
	AppendBeforeSibling(sibling dom.Node, child NodeOrText)
	AppendBasedOnParentNode(element, prevElement *dom.Element, child NodeOrText)
	AppendDoctypeToDocument(name string, publicID, systemID *string)

	AddAttrsIfMissing(target *dom.Element, attrs []tokenizer.Attr)
	RemoveFromParent(target dom.Node)
	ReparentChildren(node, newParent dom.Node)

	GetTemplateContents(target *dom.Element) *dom.DocumentFragment
	MarkScriptAlreadyStarted(target *dom.Element)
	Pop(target *dom.Element)

	SetCurrentLine(n int)
	SetQuirksMode(mode dom.QuirksMode)
	ParseError(msg string)

	SameNode(x, y dom.Node) bool
	ElemName(target *dom.Element) constants.Name
}
