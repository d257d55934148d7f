// Package xmltreebuilder implements XML5 tree construction: the much
// simpler counterpart to the HTML5 tree builder in package treebuilder.
//
// XML5 has no implicit element insertion, no foster parenting, and no
// active-formatting-element reconstruction. The builder maintains a single
// stack of open elements and a parallel stack of in-scope namespace
// bindings, and rejects start/end tag mismatches with a parse error rather
// than trying to repair the tree (spec.md §4.5, as expanded in
// SPEC_FULL.md §4.5).
package xmltreebuilder

import (
	"strings"

	"github.com/servo/justhtml5/dom"
	htmlerrors "github.com/servo/justhtml5/errors"
	"github.com/servo/justhtml5/internal/constants"
	"github.com/servo/justhtml5/xmltokenizer"
)

// scope holds the namespace-prefix bindings in effect at one point in the
// open-elements stack. The zero-value prefix "" is the default namespace.
type scope map[string]string

func (s scope) clone() scope {
	c := make(scope, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Builder constructs a *dom.Document from a stream of xmltokenizer.Tokens.
type Builder struct {
	doc *dom.Document

	openElements []*dom.Element
	scopes       []scope

	rootSeen  bool
	doctypeOK bool

	tok *xmltokenizer.Tokenizer

	errors []xmltokenizer.ParseError
}

// New creates a tree builder driven by tok.
func New(tok *xmltokenizer.Tokenizer) *Builder {
	return &Builder{
		doc:       dom.NewDocument(),
		tok:       tok,
		doctypeOK: true,
	}
}

// NewFragment creates a tree builder for fragment parsing: the document
// root check and the DOCTYPE-once check are both disabled, and namespace
// resolution starts from contextNS (the innerXML-style context element's
// default namespace) instead of the empty scope.
func NewFragment(tok *xmltokenizer.Tokenizer, contextNS string) *Builder {
	b := &Builder{
		doc:      dom.NewDocument(),
		tok:      tok,
		rootSeen: true, // suppresses the "extra root element" check
	}
	b.scopes = []scope{{"": contextNS}}
	return b
}

// FragmentNodes returns the top-level nodes produced by fragment parsing.
func (b *Builder) FragmentNodes() []dom.Node {
	return b.doc.Children()
}

// Build runs the tokenizer to completion, constructing the document.
func Build(input string) (*dom.Document, []xmltokenizer.ParseError) {
	tok := xmltokenizer.New(input)
	b := New(tok)
	for {
		t := tok.Next()
		b.ProcessToken(t)
		if t.Type == xmltokenizer.EOF {
			break
		}
	}
	errs := append(append([]xmltokenizer.ParseError(nil), tok.Errors()...), b.errors...)
	return b.doc, errs
}

// Document returns the document built so far.
func (b *Builder) Document() *dom.Document {
	return b.doc
}

// Errors returns the tree-construction parse errors accumulated so far
// (not including the tokenizer's own errors).
func (b *Builder) Errors() []xmltokenizer.ParseError {
	return b.errors
}

func (b *Builder) addError(code string) {
	b.errors = append(b.errors, xmltokenizer.ParseError{Code: code})
}

func (b *Builder) currentParent() dom.Node {
	if len(b.openElements) == 0 {
		return b.doc
	}
	return b.openElements[len(b.openElements)-1]
}

func (b *Builder) currentScope() scope {
	if len(b.scopes) == 0 {
		return scope{}
	}
	return b.scopes[len(b.scopes)-1]
}

// ProcessToken feeds one token into the tree builder. Exported so callers
// driving their own tokenizer loop (e.g. fragment parsing) can pump tokens
// one at a time instead of going through Build.
func (b *Builder) ProcessToken(t xmltokenizer.Token) {
	b.processToken(t)
}

func (b *Builder) processToken(t xmltokenizer.Token) {
	switch t.Type {
	case xmltokenizer.Character:
		b.insertText(t.Data)
	case xmltokenizer.Comment:
		b.currentParent().AppendChild(dom.NewComment(t.Data))
	case xmltokenizer.PI:
		b.currentParent().AppendChild(dom.NewProcessingInstruction(t.Name, t.Data))
	case xmltokenizer.DOCTYPE:
		b.insertDoctype(t)
	case xmltokenizer.Tag:
		b.processTag(t)
	case xmltokenizer.EOF:
		// Any still-open elements are simply left unclosed.
	}
}

func (b *Builder) insertText(data string) {
	if len(b.openElements) == 0 {
		if strings.TrimSpace(data) != "" {
			b.addError(htmlerrors.CharacterOutsideRoot)
		}
		return
	}
	b.currentParent().AppendChild(dom.NewText(data))
}

func (b *Builder) insertDoctype(t xmltokenizer.Token) {
	if !b.doctypeOK || b.doc.Doctype != nil {
		b.addError(htmlerrors.UnexpectedDoctype)
		return
	}
	b.doc.Doctype = dom.NewDocumentType(t.Name, derefOrEmpty(t.PublicID), derefOrEmpty(t.SystemID))
	b.doc.AppendChild(b.doc.Doctype)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (b *Builder) processTag(t xmltokenizer.Token) {
	switch t.TagKind {
	case xmltokenizer.StartTagKind:
		b.openTag(t, true)
	case xmltokenizer.EmptyTagKind:
		b.openTag(t, false)
	case xmltokenizer.EndTagKind:
		b.closeNamedTag(t.Name)
	case xmltokenizer.ShortTagKind:
		b.closeAnyTag()
	}
}

// openTag handles both StartTag (push, pending close) and EmptyTag (attach,
// no stack entry) tokens.
func (b *Builder) openTag(t xmltokenizer.Token, push bool) {
	parentScope := b.currentScope()
	newScope := parentScope.clone()

	// xmlns declarations on this tag extend the scope inherited by this
	// element (and, if push, by its descendants) before the element's own
	// name and its other attributes are resolved against it.
	for _, a := range t.Attrs {
		switch {
		case a.Name == "xmlns":
			newScope[""] = a.Value
		case strings.HasPrefix(a.Name, "xmlns:"):
			newScope[a.Name[len("xmlns:"):]] = a.Value
		}
	}

	prefix, local := splitQName(t.Name)
	ns := b.resolveElementNamespace(prefix, newScope)

	el := dom.NewElementNS(t.Name, ns)
	_ = constants.NewName(ns, prefix, local) // interns (namespace, prefix, local) for the process-wide table

	for _, a := range t.Attrs {
		if a.Name == "xmlns" || strings.HasPrefix(a.Name, "xmlns:") {
			el.Attributes.SetNS(constants.Resolve(constants.Key(constants.XMLNSNS)), a.Name, a.Value)
			continue
		}
		aPrefix, aLocal := splitQName(a.Name)
		if aPrefix == "" {
			el.Attributes.SetNS("", aLocal, a.Value)
			continue
		}
		aNS := b.resolveAttrNamespace(aPrefix, newScope)
		el.Attributes.SetNS(aNS, aLocal, a.Value)
	}

	if len(b.openElements) == 0 {
		if b.rootSeen {
			b.addError(htmlerrors.ExtraDocumentRoot)
		}
		b.rootSeen = true
		b.doctypeOK = false
	}
	b.currentParent().AppendChild(el)

	if push {
		b.openElements = append(b.openElements, el)
		b.scopes = append(b.scopes, newScope)
	}
}

func (b *Builder) resolveElementNamespace(prefix string, s scope) string {
	if prefix == "" {
		return s[""]
	}
	if prefix == "xml" {
		return constants.Resolve(constants.Key(constants.XMLNS))
	}
	if uri, ok := s[prefix]; ok {
		return uri
	}
	b.addError(htmlerrors.UnboundNamespacePrefix)
	return ""
}

func (b *Builder) resolveAttrNamespace(prefix string, s scope) string {
	// Same resolution as an element's prefix, except an unprefixed
	// attribute is never subject to the default namespace -- callers only
	// reach here for attributes that DO have a prefix.
	return b.resolveElementNamespace(prefix, s)
}

// closeNamedTag handles an explicit end tag, matching it against the
// innermost open element by exact qualified name (XML5 end-tag matching is
// purely lexical, no namespace resolution involved).
func (b *Builder) closeNamedTag(name string) {
	if len(b.openElements) == 0 {
		b.addError(htmlerrors.UnexpectedEndTag)
		return
	}
	top := b.openElements[len(b.openElements)-1]
	if top.TagName != name {
		b.addError(htmlerrors.MismatchedEndTag)
		return
	}
	b.openElements = b.openElements[:len(b.openElements)-1]
	b.scopes = b.scopes[:len(b.scopes)-1]
}

// closeAnyTag handles XML5's permissive "</>" short end tag, which closes
// whatever element is currently open regardless of its name.
func (b *Builder) closeAnyTag() {
	if len(b.openElements) == 0 {
		b.addError(htmlerrors.UnexpectedEndTag)
		return
	}
	b.openElements = b.openElements[:len(b.openElements)-1]
	b.scopes = b.scopes[:len(b.scopes)-1]
}
