// Package justhtml5 provides a pure Go HTML5/XML5 parsing engine implementing
// the WHATWG HTML5 tokenization and tree-construction algorithms.
//
// justhtml5 is a complete HTML5 parser that handles malformed HTML exactly
// as browsers do. It passes the official html5lib-tests tree-construction
// and tokenizer suites.
//
// # Basic Usage
//
//	doc, err := justhtml5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Query with CSS selectors
//	paragraphs, err := doc.Query("p")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range paragraphs {
//		fmt.Println(p.Text())
//	}
//
// # Features
//
//   - WHATWG HTML5 Living Standard tokenizer and tree builder
//   - XML5 tokenizer and tree builder for well-formed and not-so-well-formed XML
//   - CSS selector support
//   - Streaming API for memory-efficient processing, including document.write reentrancy
//   - Encoding detection per the HTML5 spec, backed by golang.org/x/net/html/charset
//     and golang.org/x/text/encoding
//   - Fragment parsing for innerHTML-style use cases
//
// For more information, see https://github.com/servo/justhtml5
package justhtml5

import (
	"github.com/servo/justhtml5/dom"
	"github.com/servo/justhtml5/encoding"
	htmlerrors "github.com/servo/justhtml5/errors"
	"github.com/servo/justhtml5/tokenizer"
	"github.com/servo/justhtml5/treebuilder"
)

// Version is the current version of JustGoHTML.
const Version = "0.1.0-dev"

// Parse parses an HTML string and returns a Document.
//
// The parser handles malformed HTML according to the WHATWG HTML5 specification,
// ensuring the same behavior as web browsers.
//
// Example:
//
//	doc, err := justhtml5.Parse("<html><body><p>Hello!</p></body></html>")
//	if err != nil {
//		// err contains parse errors if WithCollectErrors() was used
//	}
func Parse(html string, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)
	return parse(html, cfg)
}

// ParseBytes parses HTML from a byte slice with automatic encoding detection.
//
// The encoding is chosen in this order:
//  1. The label given via WithEncoding, if recognized (a leading BOM is
//     then skipped, not used)
//  2. BOM (Byte Order Mark)
//  3. <meta charset> or <meta http-equiv="Content-Type">
//  4. Fallback to windows-1252
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	doc, err := justhtml5.ParseBytes(data)
func ParseBytes(html []byte, opts ...Option) (*dom.Document, error) {
	cfg := newConfig(opts...)

	// Detect and decode encoding
	decoded, enc, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return nil, err
	}

	doc, err := parse(decoded, cfg)
	if doc != nil && enc != nil {
		doc.Encoding = enc.Name
	}
	return doc, err
}

// ParseFragment parses an HTML fragment in a specific context element.
//
// This is equivalent to setting element.innerHTML in browsers. The context
// determines how the fragment is parsed (e.g., parsing "<td>" in a "tr" context
// vs. in a "div" context produces different results).
//
// Example:
//
//	nodes, err := justhtml5.ParseFragment("<td>Cell</td>", "tr")
func ParseFragment(html string, context string, opts ...Option) ([]*dom.Element, error) {
	cfg := newConfig(opts...)
	cfg.fragmentContext = &treebuilder.FragmentContext{
		TagName:   context,
		Namespace: "html",
	}
	return parseFragment(html, cfg)
}

// newTokenizer builds a tokenizer configured from cfg's ParseOpts-derived fields.
func newTokenizer(html string, cfg *config) *tokenizer.Tokenizer {
	tok := tokenizer.NewWithOptions(html, tokenizer.Options{
		DiscardBOM:  cfg.discardBOM,
		XMLCoercion: cfg.xmlCoercion,
	})
	if cfg.profile {
		tok.SetProfile(true)
	}
	if cfg.lastStartTagName != "" {
		tok.SetLastStartTag(cfg.lastStartTagName)
	}
	if cfg.initialState != nil {
		tok.SetState(*cfg.initialState)
	}
	return tok
}

// applyTreeBuilderOpts pushes the ParseOpts that the tree builder (rather
// than the tokenizer) is responsible for honoring.
func applyTreeBuilderOpts(tb *treebuilder.TreeBuilder, cfg *config) {
	if cfg.iframeSrcdoc {
		tb.SetIframeSrcdoc(true)
	}
	tb.SetScriptingEnabled(cfg.scriptingEnabled)
	tb.SetDropDoctype(cfg.dropDoctype)
}

// parse is the internal parsing implementation.
func parse(html string, cfg *config) (*dom.Document, error) {
	tok := newTokenizer(html, cfg)
	tb := treebuilder.New(tok)
	applyTreeBuilderOpts(tb, cfg)

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	doc := tb.Document()
	if cfg.forcedQuirksMode != nil {
		doc.QuirksMode = *cfg.forcedQuirksMode
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors(), cfg.exactErrors)
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return doc, htmlerrors.ParseErrors(parseErrs)
		}
	}

	return doc, nil
}

// parseFragment is the internal fragment parsing implementation.
func parseFragment(html string, cfg *config) ([]*dom.Element, error) {
	tok := newTokenizer(html, cfg)
	tb := treebuilder.NewFragment(tok, cfg.fragmentContext)
	applyTreeBuilderOpts(tb, cfg)

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	if cfg.strict || cfg.collectErrors {
		parseErrs := convertTokenizerErrors(tok.Errors(), cfg.exactErrors)
		if len(parseErrs) > 0 && cfg.strict {
			return nil, parseErrs[0]
		}
		if len(parseErrs) > 0 && cfg.collectErrors {
			return tb.FragmentNodes(), htmlerrors.ParseErrors(parseErrs)
		}
	}

	return tb.FragmentNodes(), nil
}

func convertTokenizerErrors(errs []tokenizer.ParseError, exact bool) []*htmlerrors.ParseError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]*htmlerrors.ParseError, 0, len(errs))
	for _, e := range errs {
		msg := htmlerrors.AbbreviatedMessage(e.Code)
		if exact {
			msg = htmlerrors.Message(e.Code)
		}
		out = append(out, &htmlerrors.ParseError{
			Code:    e.Code,
			Message: msg,
			Line:    e.Line,
			Column:  e.Column,
		})
	}
	return out
}
