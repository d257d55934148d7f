package sink

import (
	"github.com/servo/justhtml5/dom"
	"github.com/servo/justhtml5/internal/constants"
	"github.com/servo/justhtml5/tokenizer"
)

// DOMSink is the reference TreeSink implementation: it builds a *dom.Document
// using this module's own node types. Parse/ParseFragment do not go through
// DOMSink: treebuilder builds its dom.* tree directly, and no treebuilder
// constructor accepts a TreeSink.
type DOMSink struct {
	doc *dom.Document
}

// NewDOMSink creates a DOMSink wrapping a fresh, empty document.
func NewDOMSink() *DOMSink {
	return &DOMSink{doc: dom.NewDocument()}
}

// GetDocument implements TreeSink.
func (s *DOMSink) GetDocument() *dom.Document { return s.doc }

// CreateElement implements TreeSink.
func (s *DOMSink) CreateElement(name constants.Name, attrs []tokenizer.Attr, flags ElementFlags) *dom.Element {
	var el *dom.Element
	ns := constants.Resolve(constants.Key(name.Namespace))
	if ns == dom.NamespaceHTML || ns == "" {
		el = dom.NewElement(constants.Resolve(name.Local))
	} else {
		el = dom.NewElementNS(constants.Resolve(name.Local), ns)
	}
	if flags.Template && el.TemplateContent == nil {
		el.TemplateContent = dom.NewDocumentFragment()
	}
	for _, a := range attrs {
		if a.Namespace != "" {
			el.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			continue
		}
		el.SetAttr(a.Name, a.Value)
	}
	return el
}

// CreateComment implements TreeSink.
func (s *DOMSink) CreateComment(text string) dom.Node { return dom.NewComment(text) }

// CreatePI implements TreeSink.
func (s *DOMSink) CreatePI(target, data string) dom.Node {
	return dom.NewProcessingInstruction(target, data)
}

// Append implements TreeSink.
func (s *DOMSink) Append(parent dom.Node, child NodeOrText) {
	s.appendInto(parent, nil, child)
}

// AppendBeforeSibling implements TreeSink.
func (s *DOMSink) AppendBeforeSibling(sibling dom.Node, child NodeOrText) {
	parent := sibling.Parent()
	if parent == nil {
		return
	}
	s.appendInto(parent, sibling, child)
}

// AppendBasedOnParentNode implements TreeSink: appends as a sibling before
// element if it has a parent, otherwise as a child of prevElement (the
// foster-parenting fallback used by the table insertion modes).
func (s *DOMSink) AppendBasedOnParentNode(element, prevElement *dom.Element, child NodeOrText) {
	if element != nil && element.Parent() != nil {
		s.AppendBeforeSibling(element, child)
		return
	}
	s.Append(prevElement, child)
}

func (s *DOMSink) appendInto(parent, before dom.Node, child NodeOrText) {
	var node dom.Node
	if child.Node != nil {
		node = child.Node
	} else {
		node = dom.NewText(child.Text)
	}
	if before == nil {
		parent.AppendChild(node)
		return
	}
	parent.InsertBefore(node, before)
}

// AppendDoctypeToDocument implements TreeSink.
func (s *DOMSink) AppendDoctypeToDocument(name string, publicID, systemID *string) {
	s.doc.Doctype = dom.NewDocumentType(name, derefOrEmpty(publicID), derefOrEmpty(systemID))
	s.doc.AppendChild(s.doc.Doctype)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// AddAttrsIfMissing implements TreeSink.
func (s *DOMSink) AddAttrsIfMissing(target *dom.Element, attrs []tokenizer.Attr) {
	for _, a := range attrs {
		if a.Namespace != "" {
			if !target.Attributes.HasNS(a.Namespace, a.Name) {
				target.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			}
			continue
		}
		if !target.HasAttr(a.Name) {
			target.SetAttr(a.Name, a.Value)
		}
	}
}

// RemoveFromParent implements TreeSink.
func (s *DOMSink) RemoveFromParent(target dom.Node) {
	if p := target.Parent(); p != nil {
		p.RemoveChild(target)
	}
}

// ReparentChildren implements TreeSink.
func (s *DOMSink) ReparentChildren(node, newParent dom.Node) {
	for _, child := range append([]dom.Node(nil), node.Children()...) {
		node.RemoveChild(child)
		newParent.AppendChild(child)
	}
}

// GetTemplateContents implements TreeSink.
func (s *DOMSink) GetTemplateContents(target *dom.Element) *dom.DocumentFragment {
	if target.TemplateContent == nil {
		target.TemplateContent = dom.NewDocumentFragment()
	}
	return target.TemplateContent
}

// MarkScriptAlreadyStarted implements TreeSink. Scripts inserted by the
// parser itself (as opposed to document.write) are marked so a consumer
// driving actual script execution knows not to re-run them.
func (s *DOMSink) MarkScriptAlreadyStarted(target *dom.Element) {
	target.SetAttr("data-parser-inserted", "")
}

// Pop implements TreeSink. The reference sink has no extra bookkeeping to
// do when an element is popped off the stack of open elements; this exists
// purely as the hook point spec.md §4.6 names, for sinks that track
// per-element state (e.g. "this element's children are now final").
func (s *DOMSink) Pop(_ *dom.Element) {}

// SetCurrentLine implements TreeSink. The reference sink doesn't track a
// current line on the document; diagnostics instead carry their own
// line/column (see errors.ParseError).
func (s *DOMSink) SetCurrentLine(_ int) {}

// SetQuirksMode implements TreeSink.
func (s *DOMSink) SetQuirksMode(mode dom.QuirksMode) { s.doc.QuirksMode = mode }

// ParseError implements TreeSink. The reference sink doesn't collect parse
// errors itself -- tokenizer-level errors are surfaced through
// tokenizer.Tokenizer.Errors() and tree-builder-level errors are currently
// discarded, matching the teacher's "parsing continues regardless" design.
func (s *DOMSink) ParseError(_ string) {}

// SameNode implements TreeSink.
func (s *DOMSink) SameNode(x, y dom.Node) bool { return x == y }

// ElemName implements TreeSink.
func (s *DOMSink) ElemName(target *dom.Element) constants.Name {
	return constants.NewName(target.Namespace, "", target.TagName)
}
