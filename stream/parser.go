package stream

import (
	"github.com/servo/justhtml5/dom"
	"github.com/servo/justhtml5/encoding"
	"github.com/servo/justhtml5/internal/queue"
	"github.com/servo/justhtml5/tokenizer"
	"github.com/servo/justhtml5/treebuilder"
)

// ParserActionKind distinguishes the outcomes Feed and
// NotifyParserBlockingScriptLoaded can report, mirroring the suspension
// points a browser's HTML parser yields control at (spec.md §4.7, §5).
type ParserActionKind int

const (
	// Continue means the parser ran to completion with no suspension.
	Continue ParserActionKind = iota

	// StartOverWithEncoding means the caller must re-decode the original
	// bytes with Encoding and feed the result through a brand new Parser;
	// per spec.md §4.7, a restart always reparses from scratch.
	StartOverWithEncoding

	// HandleScript means a <script> element has just been closed. The
	// parser is suspended until NotifyParserBlockingScriptLoaded is
	// called; in between, WriteScript may be used to splice
	// document.write-style output at the parser's current position.
	HandleScript
)

// ParserAction reports why control returned to the caller.
type ParserAction struct {
	Kind ParserActionKind

	// Encoding names the encoding to restart with, set when Kind is
	// StartOverWithEncoding.
	Encoding string

	// Script is the just-closed <script> element, set when Kind is
	// HandleScript.
	Script *dom.Element
}

// Parser is a reentrant HTML5 parser built on top of this module's
// tokenizer and tree builder, exposing the script-blocking suspension
// point and document.write reentrancy that the one-shot Parse/Stream APIs
// do not (spec.md §4.7, §5). Unlike a fully incremental network parser it
// expects its input already available in full -- the reentrancy it models
// is the script-execution pause, not partial byte delivery.
type Parser struct {
	tok *tokenizer.Tokenizer
	tb  *treebuilder.TreeBuilder

	rawInput []byte // retained only when constructed via NewParserBytes, for Restart

	// scriptInput buffers document.write output between WriteScript calls
	// while a script is conceptually "executing" (between Feed returning
	// HandleScript and NotifyParserBlockingScriptLoaded). It is spliced into
	// the tokenizer's buffer as one unit on resume, per spec.md §4.7's
	// "maintains a secondary script_input queue; on script completion, it
	// prepends script_input to the main queue".
	scriptInput *queue.Queue

	suspended bool
	done      bool
}

// NewParser creates a Parser over an already-decoded HTML document.
func NewParser(html string) *Parser {
	tok := tokenizer.New(html)
	return &Parser{
		tok:         tok,
		tb:          treebuilder.New(tok),
		scriptInput: queue.New(),
	}
}

// NewParserBytes decodes raw bytes per the HTML5 encoding-sniffing
// algorithm (see package encoding) and returns a Parser over the result.
// The original bytes are retained so Restart can re-decode them under a
// different encoding.
func NewParserBytes(data []byte, encodingHint string) (*Parser, error) {
	decoded, enc, err := encoding.Decode(data, encodingHint)
	if err != nil {
		return nil, err
	}
	p := NewParser(decoded)
	p.rawInput = data
	if enc != nil {
		p.tb.Document().Encoding = enc.Name
	}
	return p, nil
}

// Restart re-decodes the original raw bytes (supplied via NewParserBytes)
// under the named encoding and returns a fresh Parser over the result, per
// spec.md §4.7's "the entire input must be re-fed from scratch". Restart
// panics if this Parser was not constructed with NewParserBytes -- there is
// no raw byte buffer to re-decode.
func (p *Parser) Restart(encodingName string) (*Parser, error) {
	if p.rawInput == nil {
		panic("stream: Restart called on a Parser not constructed via NewParserBytes")
	}
	decoded, enc, err := encoding.Decode(p.rawInput, encodingName)
	if err != nil {
		return nil, err
	}
	np := NewParser(decoded)
	np.rawInput = p.rawInput
	if enc != nil {
		np.tb.Document().Encoding = enc.Name
	}
	return np, nil
}

// Feed drives the parser forward until it reaches the end of input or hits
// a suspension point. Calling Feed while suspended on HandleScript resumes
// from the current insertion point after splicing in any input buffered by
// WriteScript.
func (p *Parser) Feed() ParserAction {
	if p.done {
		return ParserAction{Kind: Continue}
	}
	if p.suspended {
		p.resume()
	}

	for {
		p.tok.SetAllowCDATA(p.tb.AllowCDATA())
		t := p.tok.Next()

		// The script element is still the current (innermost open) element
		// right up until ProcessToken pops it for this exact end tag, so it
		// must be captured before processing, not after.
		var closingScript *dom.Element
		if t.Type == tokenizer.EndTag && t.Name == "script" {
			if el := p.tb.CurrentElement(); el != nil && el.TagName == "script" {
				closingScript = el
			}
		}

		p.tb.ProcessToken(t)

		if t.Type == tokenizer.EOF {
			p.done = true
			return ParserAction{Kind: Continue}
		}

		if closingScript != nil {
			p.suspended = true
			return ParserAction{Kind: HandleScript, Script: closingScript}
		}
	}
}

// WriteScript buffers document.write-style output produced while the
// caller is "running" the script handed back by the last HandleScript
// action. It has no effect on the tokenizer until NotifyParserBlockingScriptLoaded
// is called; multiple calls accumulate in source order.
func (p *Parser) WriteScript(text string) {
	p.scriptInput.PushBack(text)
}

// NotifyParserBlockingScriptLoaded resumes a Parser suspended on
// HandleScript, splicing any buffered WriteScript output at the current
// insertion point before continuing, then calls Feed to keep parsing.
// Calling it while not suspended is a no-op that just calls Feed.
func (p *Parser) NotifyParserBlockingScriptLoaded() ParserAction {
	return p.Feed()
}

func (p *Parser) resume() {
	p.suspended = false
	if p.scriptInput.Empty() {
		return
	}
	p.tok.InsertAtCursor(p.scriptInput.DrainString())
}

// Document returns the document tree built so far. Safe to call while
// suspended: it reflects everything parsed up to the current insertion
// point.
func (p *Parser) Document() *dom.Document {
	return p.tb.Document()
}
