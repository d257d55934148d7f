package justhtml5

import (
	"github.com/servo/justhtml5/dom"
	"github.com/servo/justhtml5/tokenizer"
	"github.com/servo/justhtml5/treebuilder"
)

// config holds parser configuration. Field names track spec.md §6's ParseOpts
// one-for-one (exact_errors, discard_bom, profile, initial_state,
// last_start_tag_name, drop_doctype, scripting_enabled, iframe_srcdoc,
// quirks_mode), plus the teacher's own fragment/strict/collect-errors knobs.
type config struct {
	encoding        string
	fragmentContext *treebuilder.FragmentContext
	iframeSrcdoc    bool
	strict          bool
	collectErrors   bool
	xmlCoercion     bool

	exactErrors      bool
	discardBOM       bool
	profile          bool
	initialState     *tokenizer.State
	lastStartTagName string
	dropDoctype      bool
	scriptingEnabled bool
	forcedQuirksMode *dom.QuirksMode
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{
		discardBOM:       true,
		scriptingEnabled: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Option configures the parser behavior.
type Option func(*config)

// WithEncoding sets the character encoding to use for parsing.
// This overrides automatic encoding detection.
//
// Common values: "utf-8", "windows-1252", "iso-8859-1"
func WithEncoding(enc string) Option {
	return func(c *config) {
		c.encoding = enc
	}
}

// WithFragment sets the parsing context for fragment parsing.
// This is typically used internally by ParseFragment.
func WithFragment(tagName string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: "html",
		}
	}
}

// WithFragmentNS sets the parsing context with a specific namespace.
// Use this for parsing SVG or MathML fragments.
func WithFragmentNS(tagName, namespace string) Option {
	return func(c *config) {
		c.fragmentContext = &treebuilder.FragmentContext{
			TagName:   tagName,
			Namespace: namespace,
		}
	}
}

// WithIframeSrcdoc enables iframe srcdoc parsing mode.
// In this mode, the parser treats the input as the srcdoc attribute value
// and disables quirks-mode detection that would otherwise apply.
func WithIframeSrcdoc() Option {
	return func(c *config) {
		c.iframeSrcdoc = true
	}
}

// WithStrictMode enables strict parsing mode.
// In this mode, the first parse error causes Parse to return an error.
// By default, parse errors are handled according to the HTML5 spec
// and parsing continues.
func WithStrictMode() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCollectErrors enables error collection mode.
// Parse errors are collected and returned as a ParseErrors error
// (which can be unwrapped to get individual errors).
// Without this option, parse errors are silently recovered from.
func WithCollectErrors() Option {
	return func(c *config) {
		c.collectErrors = true
	}
}

// WithXMLCoercion enables XML output coercions used by some conformance
// suites: form feeds become spaces in text tokens, disallowed characters
// become U+FFFD, and "--" inside comments is split to avoid an early close.
func WithXMLCoercion() Option {
	return func(c *config) {
		c.xmlCoercion = true
	}
}

// WithExactErrors switches parse-error messages from abbreviated static
// strings (the error code itself) to the fully-formatted descriptive text.
// Default is abbreviated.
func WithExactErrors() Option {
	return func(c *config) {
		c.exactErrors = true
	}
}

// WithoutDiscardBOM keeps a leading U+FEFF BOM as ordinary input instead of
// stripping it before tokenization starts. By default the BOM is discarded.
func WithoutDiscardBOM() Option {
	return func(c *config) {
		c.discardBOM = false
	}
}

// WithProfile enables per-state tokenizer timing. The collected timings are
// available from the Tokenizer via its profiling accessor and are intended
// for benchmark harnesses, not for production parsing.
func WithProfile() Option {
	return func(c *config) {
		c.profile = true
	}
}

// WithInitialState starts the tokenizer in a state other than Data. This is
// used by tokenizer conformance-test harnesses that seed a specific state
// (e.g. RAWTEXT) before feeding input, and is not meaningful for ordinary
// document parsing.
func WithInitialState(state tokenizer.State) Option {
	return func(c *config) {
		s := state
		c.initialState = &s
	}
}

// WithLastStartTagName seeds the "appropriate end tag" sentinel used by the
// RAWTEXT/RCDATA/script-data end-tag-matching states, without having fed the
// corresponding start tag. Used by tokenizer conformance tests.
func WithLastStartTagName(name string) Option {
	return func(c *config) {
		c.lastStartTagName = name
	}
}

// WithDropDoctype prevents the parsed DOCTYPE from being attached to the
// resulting document, while still letting it drive quirks-mode detection.
func WithDropDoctype() Option {
	return func(c *config) {
		c.dropDoctype = true
	}
}

// WithScriptingDisabled turns off scripting, which changes how <noscript>
// is parsed: its content becomes ordinary markup (the "in head noscript"
// insertion mode) rather than raw text. Scripting is enabled by default.
func WithScriptingDisabled() Option {
	return func(c *config) {
		c.scriptingEnabled = false
	}
}

// WithQuirksMode forces the document's quirks mode, overriding whatever the
// DOCTYPE (or its absence) would otherwise select.
func WithQuirksMode(mode dom.QuirksMode) Option {
	return func(c *config) {
		m := mode
		c.forcedQuirksMode = &m
	}
}
