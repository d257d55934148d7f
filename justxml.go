package justhtml5

import (
	"github.com/servo/justhtml5/dom"
	htmlerrors "github.com/servo/justhtml5/errors"
	"github.com/servo/justhtml5/xmltokenizer"
	"github.com/servo/justhtml5/xmltreebuilder"
)

// ParseXML parses an XML5 document and returns a Document.
//
// XML5 (https://www.w3.org/community/xml5/) is a browser-style, permissive
// relative of well-formed XML: it shares HTML5's character-stream and
// tokenizer discipline but a far simpler tree-construction algorithm --
// there is no implicit element insertion and no foster parenting, and
// start/end tag mismatches are reported as parse errors rather than
// silently repaired.
//
// Example:
//
//	doc, err := justhtml5.ParseXML(`<?xml version="1.0"?><root xmlns:a="urn:a"><a:child/></root>`)
func ParseXML(xml string) (*dom.Document, error) {
	doc, errs := xmltreebuilder.Build(xml)
	return doc, xmlParseErrors(errs)
}

// ParseXMLFragment parses an XML5 fragment whose unprefixed element names
// resolve against contextNS (the context element's default namespace,
// analogous to ParseFragment's context tag name), returning the resulting
// top-level nodes.
func ParseXMLFragment(xml string, contextNS string) ([]dom.Node, error) {
	tok := xmltokenizer.New(xml)
	tb := xmltreebuilder.NewFragment(tok, contextNS)

	for {
		t := tok.Next()
		tb.ProcessToken(t)
		if t.Type == xmltokenizer.EOF {
			break
		}
	}

	errs := append(append([]xmltokenizer.ParseError(nil), tok.Errors()...), tb.Errors()...)
	return tb.FragmentNodes(), xmlParseErrors(errs)
}

func xmlParseErrors(errs []xmltokenizer.ParseError) error {
	if len(errs) == 0 {
		return nil
	}
	out := make(htmlerrors.ParseErrors, 0, len(errs))
	for _, e := range errs {
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: htmlerrors.AbbreviatedMessage(e.Code),
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}
