package xmltokenizer

import (
	"strings"

	htmlerrors "github.com/servo/justhtml5/errors"
)

// ParseError represents an XML5 tokenizer parse error. Message is filled in
// by the caller (see justhtml5.convertXMLTokenizerErrors), same convention
// as the HTML5 tokenizer's own ParseError type.
type ParseError struct {
	Code   string
	Line   int
	Column int
}

// Tokenizer implements the XML5 tokenization algorithm: a simpler, more
// permissive relative of the HTML5 tokenizer in the sibling tokenizer
// package. There is no RCDATA/RAWTEXT/script-data family of states and no
// character-reference sub-tokenizer -- entity references are left verbatim
// in character data and attribute values, for the tree builder (or a
// caller) to decode if it wants to.
type Tokenizer struct {
	buf []rune
	pos int

	state State

	reconsume bool
	ignoreLF  bool

	line   int
	column int

	currentTagKind      TagKind
	currentTagName      []rune
	currentTagAttrs     []Attr
	currentAttrName     []rune
	currentAttrValue    []rune

	currentComment []rune
	commentEOF     bool

	currentPITarget []rune
	currentPIData   []rune

	currentDoctypeName   []rune
	currentDoctypePublic *[]rune
	currentDoctypeSystem *[]rune

	textBuffer strings.Builder

	pendingTokens []Token
	errors        []ParseError
}

// New creates a new XML5 tokenizer for the given input.
func New(input string) *Tokenizer {
	t := &Tokenizer{
		state:  DataState,
		line:   1,
		column: 0,
	}
	t.buf = []rune(input)
	return t
}

// Errors returns the parse errors encountered during tokenization.
func (t *Tokenizer) Errors() []ParseError {
	return t.errors
}

// Next returns the next token. Returns a token with Type == EOF when input
// is exhausted.
func (t *Tokenizer) Next() Token {
	for len(t.pendingTokens) == 0 {
		t.step()
	}
	tok := t.pendingTokens[0]
	t.pendingTokens = t.pendingTokens[1:]
	return tok
}

//nolint:gocyclo,exhaustive // XML5 tokenizer state machine dispatcher
func (t *Tokenizer) step() {
	switch t.state {
	case DataState:
		t.stateData()
	case TagState:
		t.stateTag()
	case EndTagState:
		t.stateEndTag()
	case EndTagNameState:
		t.stateEndTagName()
	case EndTagNameAfterState:
		t.stateEndTagNameAfter()
	case PiState:
		t.statePi()
	case PiTargetState:
		t.statePiTarget()
	case PiTargetAfterState:
		t.statePiTargetAfter()
	case PiDataState:
		t.statePiData()
	case MarkupDeclState:
		t.stateMarkupDecl()
	case CommentStartState:
		t.stateCommentStart()
	case CommentStartDashState:
		t.stateCommentStartDash()
	case CommentState:
		t.stateComment()
	case CommentLessThanState:
		t.stateCommentLessThan()
	case CommentLessThanBangState:
		t.stateCommentLessThanBang()
	case CommentLessThanBangDashState:
		t.stateCommentLessThanBangDash()
	case CommentLessThanBangDashDashState:
		t.stateCommentLessThanBangDashDash()
	case CommentEndDashState:
		t.stateCommentEndDash()
	case CommentEndState:
		t.stateCommentEnd()
	case CommentEndBangState:
		t.stateCommentEndBang()
	case CdataState:
		t.stateCdata()
	case CdataBracketState:
		t.stateCdataBracket()
	case CdataEndState:
		t.stateCdataEnd()
	case TagNameState:
		t.stateTagName()
	case TagEmptyState:
		t.stateTagEmpty()
	case TagAttrNameBeforeState:
		t.stateTagAttrNameBefore()
	case TagAttrNameState:
		t.stateTagAttrName()
	case TagAttrNameAfterState:
		t.stateTagAttrNameAfter()
	case TagAttrValueBeforeState:
		t.stateTagAttrValueBefore()
	case TagAttrValueUnquotedState:
		t.stateTagAttrValueUnquoted()
	case TagAttrValueSingleQuotedState:
		t.stateTagAttrValueSingleQuoted()
	case TagAttrValueDoubleQuotedState:
		t.stateTagAttrValueDoubleQuoted()
	case DoctypeState:
		t.stateDoctype()
	case BeforeDoctypeNameState:
		t.stateBeforeDoctypeName()
	case DoctypeNameState:
		t.stateDoctypeName()
	case AfterDoctypeNameState:
		t.stateAfterDoctypeName()
	case AfterDoctypePublicKeywordState:
		t.stateAfterDoctypePublicKeyword()
	case AfterDoctypeSystemKeywordState:
		t.stateAfterDoctypeSystemKeyword()
	case BeforeDoctypeIdentifierPublicState:
		t.stateBeforeDoctypeIdentifierPublic()
	case BeforeDoctypeIdentifierSystemState:
		t.stateBeforeDoctypeIdentifierSystem()
	case DoctypeIdentifierDoubleQuotedPublicState:
		t.stateDoctypeIdentifierQuotedPublic('"')
	case DoctypeIdentifierSingleQuotedPublicState:
		t.stateDoctypeIdentifierQuotedPublic('\'')
	case DoctypeIdentifierDoubleQuotedSystemState:
		t.stateDoctypeIdentifierQuotedSystem('"')
	case DoctypeIdentifierSingleQuotedSystemState:
		t.stateDoctypeIdentifierQuotedSystem('\'')
	case AfterDoctypeIdentifierPublicState:
		t.stateAfterDoctypeIdentifierPublic()
	case AfterDoctypeIdentifierSystemState:
		t.stateAfterDoctypeIdentifierSystem()
	case BetweenDoctypePublicAndSystemIdentifiersState:
		t.stateBetweenDoctypePublicAndSystemIdentifiers()
	case BogusDoctypeState:
		t.stateBogusDoctype()
	case BogusCommentState:
		t.stateBogusComment()
	case QuiescentState:
		t.emitEOF()
	default:
		t.state = DataState
	}
}

// --- character stream primitives (same discipline as the HTML5 tokenizer:
// CR and CRLF are normalized to a single LF, spec.md §4.2) ---

func (t *Tokenizer) getChar() (rune, bool) {
	if t.reconsume {
		t.reconsume = false
		if t.pos == 0 {
			return 0, false
		}
		t.pos--
	}

	for {
		if t.pos >= len(t.buf) {
			return 0, false
		}
		c := t.buf[t.pos]
		t.pos++

		if c == '\r' {
			t.ignoreLF = true
			t.advance('\n')
			return '\n', true
		}
		if c == '\n' {
			if t.ignoreLF {
				t.ignoreLF = false
				continue
			}
			t.advance('\n')
			return '\n', true
		}
		t.ignoreLF = false
		t.advance(c)
		return c, true
	}
}

func (t *Tokenizer) peek(offset int) (rune, bool) {
	i := t.pos + offset
	if t.reconsume {
		i--
	}
	if i < 0 || i >= len(t.buf) {
		return 0, false
	}
	return t.buf[i], true
}

func (t *Tokenizer) advance(c rune) {
	if c == '\n' {
		t.line++
		t.column = 0
		return
	}
	t.column++
}

func (t *Tokenizer) reconsumeCurrent() {
	t.reconsume = true
}

func (t *Tokenizer) consumeIf(lit string) bool {
	r := []rune(lit)
	if t.pos+len(r) > len(t.buf) {
		return false
	}
	for i := range r {
		if t.buf[t.pos+i] != r[i] {
			return false
		}
	}
	t.pos += len(r)
	t.column += len(r)
	return true
}

func (t *Tokenizer) consumeCaseInsensitive(lit string) bool {
	r := []rune(lit)
	if t.pos+len(r) > len(t.buf) {
		return false
	}
	for i := range r {
		if toLowerASCII(t.buf[t.pos+i]) != toLowerASCII(r[i]) {
			return false
		}
	}
	t.pos += len(r)
	t.column += len(r)
	return true
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 32
	}
	return r
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f'
}

func isNameStart(c rune) bool {
	return c == ':' || c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c >= 0x80
}

// --- emission ---

func (t *Tokenizer) emit(tok Token) {
	t.pendingTokens = append(t.pendingTokens, tok)
}

func (t *Tokenizer) emitEOF() {
	t.flushText()
	t.emit(Token{Type: EOF})
}

func (t *Tokenizer) emitError(code string) {
	t.errors = append(t.errors, ParseError{
		Code:   code,
		Line:   t.line,
		Column: max(1, t.column),
	})
}

func (t *Tokenizer) appendText(r rune) {
	t.textBuffer.WriteRune(r)
}

func (t *Tokenizer) flushText() {
	if t.textBuffer.Len() == 0 {
		return
	}
	data := t.textBuffer.String()
	t.textBuffer.Reset()
	t.emit(Token{Type: Character, Data: data})
}

func (t *Tokenizer) startTag(kind TagKind, first rune) {
	t.flushText()
	t.currentTagKind = kind
	t.currentTagName = append(t.currentTagName[:0], first)
	t.currentTagAttrs = t.currentTagAttrs[:0]
}

func (t *Tokenizer) finishAttribute() {
	if len(t.currentAttrName) == 0 {
		return
	}
	name := string(t.currentAttrName)
	value := string(t.currentAttrValue)
	for _, a := range t.currentTagAttrs {
		if a.Name == name {
			t.emitError(htmlerrors.DuplicateAttribute)
			t.currentAttrName = t.currentAttrName[:0]
			t.currentAttrValue = t.currentAttrValue[:0]
			return
		}
	}
	t.currentTagAttrs = append(t.currentTagAttrs, Attr{Name: name, Value: value})
	t.currentAttrName = t.currentAttrName[:0]
	t.currentAttrValue = t.currentAttrValue[:0]
}

func (t *Tokenizer) emitCurrentTag() {
	tok := Token{
		Type:    Tag,
		TagKind: t.currentTagKind,
		Name:    string(t.currentTagName),
		Attrs:   append([]Attr(nil), t.currentTagAttrs...),
	}
	t.currentTagName = t.currentTagName[:0]
	t.currentTagAttrs = t.currentTagAttrs[:0]
	t.emit(tok)
}

func (t *Tokenizer) emitComment() {
	data := string(t.currentComment)
	t.currentComment = t.currentComment[:0]
	t.emit(Token{Type: Comment, Data: data})
	t.commentEOF = false
}

func (t *Tokenizer) emitPI() {
	tok := Token{
		Type: PI,
		Name: string(t.currentPITarget),
		Data: string(t.currentPIData),
	}
	t.currentPITarget = t.currentPITarget[:0]
	t.currentPIData = t.currentPIData[:0]
	t.emit(tok)
}

func (t *Tokenizer) emitDoctype() {
	name := string(t.currentDoctypeName)
	var publicID, systemID *string
	if t.currentDoctypePublic != nil {
		s := string(*t.currentDoctypePublic)
		publicID = &s
	}
	if t.currentDoctypeSystem != nil {
		s := string(*t.currentDoctypeSystem)
		systemID = &s
	}
	t.emit(Token{Type: DOCTYPE, Name: name, PublicID: publicID, SystemID: systemID})
	t.currentDoctypeName = t.currentDoctypeName[:0]
	t.currentDoctypePublic = nil
	t.currentDoctypeSystem = nil
}

// --- Data ---

func (t *Tokenizer) stateData() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitEOF()
			return
		}
		if c == '<' {
			t.state = TagState
			return
		}
		t.appendText(c)
	}
}

// --- Tags ---

func (t *Tokenizer) stateTag() {
	c, ok := t.getChar()
	if !ok {
		t.flushText()
		t.emitError(htmlerrors.EOFBeforeTagName)
		t.emitEOF()
		return
	}
	switch {
	case c == '/':
		t.state = EndTagState
	case c == '?':
		t.state = PiState
	case c == '!':
		t.state = MarkupDeclState
	case isNameStart(c):
		t.startTag(StartTagKind, c)
		t.state = TagNameState
	default:
		t.emitError(htmlerrors.InvalidFirstCharacterOfTagName)
		t.reconsumeCurrent()
		t.state = BogusCommentState
	}
}

func (t *Tokenizer) stateTagName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			t.state = TagAttrNameBeforeState
			return
		case c == '/':
			t.state = TagEmptyState
			return
		case c == '>':
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.currentTagName = append(t.currentTagName, c)
		}
	}
}

func (t *Tokenizer) stateTagEmpty() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInTagXML)
		t.emitEOF()
		return
	}
	if c == '>' {
		t.currentTagKind = EmptyTagKind
		t.emitCurrentTag()
		t.state = DataState
		return
	}
	t.emitError(htmlerrors.UnexpectedCharacterAfterSlash)
	t.reconsumeCurrent()
	t.state = TagAttrNameBeforeState
}

func (t *Tokenizer) stateTagAttrNameBefore() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '/':
			t.state = TagEmptyState
			return
		case c == '>':
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.currentAttrName = append(t.currentAttrName[:0], c)
			t.currentAttrValue = t.currentAttrValue[:0]
			t.state = TagAttrNameState
			return
		}
	}
}

func (t *Tokenizer) stateTagAttrName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case c == '=':
			t.state = TagAttrValueBeforeState
			return
		case isWhitespace(c):
			t.state = TagAttrNameAfterState
			return
		case c == '/':
			t.finishAttribute()
			t.state = TagEmptyState
			return
		case c == '>':
			t.finishAttribute()
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.currentAttrName = append(t.currentAttrName, c)
		}
	}
}

func (t *Tokenizer) stateTagAttrNameAfter() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '=':
			t.state = TagAttrValueBeforeState
			return
		case c == '/':
			t.finishAttribute()
			t.state = TagEmptyState
			return
		case c == '>':
			t.finishAttribute()
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.finishAttribute()
			t.currentAttrName = append(t.currentAttrName[:0], c)
			t.state = TagAttrNameState
			return
		}
	}
}

func (t *Tokenizer) stateTagAttrValueBefore() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '"':
			t.state = TagAttrValueDoubleQuotedState
			return
		case c == '\'':
			t.state = TagAttrValueSingleQuotedState
			return
		case c == '>':
			t.emitError(htmlerrors.MissingAttributeValue)
			t.finishAttribute()
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.reconsumeCurrent()
			t.state = TagAttrValueUnquotedState
			return
		}
	}
}

func (t *Tokenizer) stateTagAttrValueDoubleQuoted() {
	t.stateTagAttrValueQuoted('"')
}

func (t *Tokenizer) stateTagAttrValueSingleQuoted() {
	t.stateTagAttrValueQuoted('\'')
}

func (t *Tokenizer) stateTagAttrValueQuoted(quote rune) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		if c == quote {
			t.finishAttribute()
			t.state = TagAttrNameBeforeState
			return
		}
		t.currentAttrValue = append(t.currentAttrValue, c)
	}
}

func (t *Tokenizer) stateTagAttrValueUnquoted() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			t.finishAttribute()
			t.state = TagAttrNameBeforeState
			return
		case c == '>':
			t.finishAttribute()
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.currentAttrValue = append(t.currentAttrValue, c)
		}
	}
}

// --- End tags ---

func (t *Tokenizer) stateEndTag() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFBeforeTagName)
		t.emitEOF()
		return
	}
	switch {
	case c == '>':
		t.currentTagKind = ShortTagKind
		t.currentTagName = t.currentTagName[:0]
		t.emitCurrentTag()
		t.state = DataState
	case isNameStart(c):
		t.startTag(EndTagKind, c)
		t.state = EndTagNameState
	default:
		t.emitError(htmlerrors.InvalidFirstCharacterOfTagName)
		t.reconsumeCurrent()
		t.state = BogusCommentState
	}
}

func (t *Tokenizer) stateEndTagName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			t.state = EndTagNameAfterState
			return
		case c == '>':
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.currentTagName = append(t.currentTagName, c)
		}
	}
}

func (t *Tokenizer) stateEndTagNameAfter() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInTagXML)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '>':
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.emitError(htmlerrors.EndTagWithAttributes)
			// Permissively ignore trailing junk in an end tag.
		}
	}
}

// --- Processing instructions ---

func (t *Tokenizer) statePi() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInPI)
		t.emitEOF()
		return
	}
	if isNameStart(c) {
		t.currentPITarget = append(t.currentPITarget[:0], c)
		t.currentPIData = t.currentPIData[:0]
		t.state = PiTargetState
		return
	}
	t.emitError(htmlerrors.InvalidCharacterInPITarget)
	t.reconsumeCurrent()
	t.state = BogusCommentState
}

func (t *Tokenizer) statePiTarget() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInPI)
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			t.state = PiTargetAfterState
			return
		case c == '?':
			if next, ok := t.peek(0); ok && next == '>' {
				t.getChar()
				t.emitPI()
				t.state = DataState
				return
			}
			t.currentPIData = append(t.currentPIData, '?')
		default:
			t.currentPITarget = append(t.currentPITarget, c)
		}
	}
}

func (t *Tokenizer) statePiTargetAfter() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInPI)
			t.emitEOF()
			return
		}
		if isWhitespace(c) {
			continue
		}
		t.reconsumeCurrent()
		t.state = PiDataState
		return
	}
}

func (t *Tokenizer) statePiData() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInPI)
			t.emitEOF()
			return
		}
		if c == '?' {
			if next, ok := t.peek(0); ok && next == '>' {
				t.getChar()
				t.emitPI()
				t.state = DataState
				return
			}
		}
		t.currentPIData = append(t.currentPIData, c)
	}
}

// --- Markup declarations: comments, CDATA, DOCTYPE ---

func (t *Tokenizer) stateMarkupDecl() {
	switch {
	case t.consumeIf("--"):
		t.state = CommentStartState
	case t.consumeIf("[CDATA["):
		t.state = CdataState
	case t.consumeCaseInsensitive("DOCTYPE"):
		t.state = DoctypeState
	default:
		t.emitError(htmlerrors.MalformedMarkupDeclaration)
		t.state = BogusCommentState
	}
}

func (t *Tokenizer) stateCommentStart() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInCommentXML)
		t.emitComment()
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.state = CommentStartDashState
	case '>':
		t.emitError(htmlerrors.AbruptClosingOfEmptyComment)
		t.emitComment()
		t.state = DataState
	default:
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

func (t *Tokenizer) stateCommentStartDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInCommentXML)
		t.emitComment()
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.state = CommentEndState
	case '>':
		t.emitError(htmlerrors.AbruptClosingOfEmptyComment)
		t.currentComment = append(t.currentComment, '-')
		t.emitComment()
		t.state = DataState
	default:
		t.currentComment = append(t.currentComment, '-')
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

func (t *Tokenizer) stateComment() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInCommentXML)
			t.commentEOF = true
			t.emitComment()
			t.emitEOF()
			return
		}
		switch c {
		case '<':
			t.currentComment = append(t.currentComment, c)
			t.state = CommentLessThanState
			return
		case '-':
			t.state = CommentEndDashState
			return
		default:
			t.currentComment = append(t.currentComment, c)
		}
	}
}

func (t *Tokenizer) stateCommentLessThan() {
	c, ok := t.getChar()
	if !ok {
		t.reconsumeCurrent()
		t.state = CommentState
		return
	}
	if c == '!' {
		t.currentComment = append(t.currentComment, c)
		t.state = CommentLessThanBangState
		return
	}
	if c == '<' {
		t.currentComment = append(t.currentComment, c)
		return
	}
	t.reconsumeCurrent()
	t.state = CommentState
}

func (t *Tokenizer) stateCommentLessThanBang() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.state = CommentLessThanBangDashState
		return
	}
	t.reconsumeCurrent()
	t.state = CommentState
}

func (t *Tokenizer) stateCommentLessThanBangDash() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.state = CommentLessThanBangDashDashState
		return
	}
	t.reconsumeCurrent()
	t.state = CommentEndDashState
}

func (t *Tokenizer) stateCommentLessThanBangDashDash() {
	c, ok := t.getChar()
	if !ok {
		t.reconsumeCurrent()
		t.state = CommentEndState
		return
	}
	if c != '>' {
		t.emitError(htmlerrors.NestedComment)
	}
	t.reconsumeCurrent()
	t.state = CommentEndState
}

func (t *Tokenizer) stateCommentEndDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInCommentXML)
		t.commentEOF = true
		t.emitComment()
		t.emitEOF()
		return
	}
	if c == '-' {
		t.state = CommentEndState
		return
	}
	t.currentComment = append(t.currentComment, '-')
	t.reconsumeCurrent()
	t.state = CommentState
}

func (t *Tokenizer) stateCommentEnd() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInCommentXML)
		t.commentEOF = true
		t.emitComment()
		t.emitEOF()
		return
	}
	switch c {
	case '>':
		t.emitComment()
		t.state = DataState
	case '!':
		t.state = CommentEndBangState
	case '-':
		t.currentComment = append(t.currentComment, '-')
	default:
		t.currentComment = append(t.currentComment, '-', '-')
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

func (t *Tokenizer) stateCommentEndBang() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInCommentXML)
		t.commentEOF = true
		t.emitComment()
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.currentComment = append(t.currentComment, '-', '-', '!')
		t.state = CommentEndDashState
	case '>':
		t.emitError(htmlerrors.IncorrectlyClosedComment)
		t.currentComment = append(t.currentComment, '-', '-', '!')
		t.emitComment()
		t.state = DataState
	default:
		t.currentComment = append(t.currentComment, '-', '-', '!')
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

func (t *Tokenizer) stateBogusComment() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.commentEOF = true
			t.emitComment()
			t.emitEOF()
			return
		}
		if c == '>' {
			t.emitComment()
			t.state = DataState
			return
		}
		t.currentComment = append(t.currentComment, c)
	}
}

// --- CDATA ---

func (t *Tokenizer) stateCdata() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInCDATAXML)
			t.flushText()
			t.emitEOF()
			return
		}
		if c == ']' {
			t.state = CdataBracketState
			return
		}
		t.appendText(c)
	}
}

func (t *Tokenizer) stateCdataBracket() {
	c, ok := t.getChar()
	if !ok {
		t.appendText(']')
		t.emitError(htmlerrors.EOFInCDATAXML)
		t.flushText()
		t.emitEOF()
		return
	}
	if c == ']' {
		t.state = CdataEndState
		return
	}
	t.appendText(']')
	t.reconsumeCurrent()
	t.state = CdataState
}

func (t *Tokenizer) stateCdataEnd() {
	c, ok := t.getChar()
	if !ok {
		t.appendText(']')
		t.appendText(']')
		t.emitError(htmlerrors.EOFInCDATAXML)
		t.flushText()
		t.emitEOF()
		return
	}
	switch c {
	case '>':
		t.state = DataState
	case ']':
		t.appendText(']')
	default:
		t.appendText(']')
		t.appendText(']')
		t.reconsumeCurrent()
		t.state = CdataState
	}
}

// --- DOCTYPE ---

func (t *Tokenizer) stateDoctype() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInDoctypeXML)
		t.emitDoctype()
		t.emitEOF()
		return
	}
	if isWhitespace(c) {
		t.state = BeforeDoctypeNameState
		return
	}
	t.emitError(htmlerrors.MissingWhitespaceBeforeDoctypeName)
	t.reconsumeCurrent()
	t.state = BeforeDoctypeNameState
}

func (t *Tokenizer) stateBeforeDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '>':
			t.emitError(htmlerrors.MissingDoctypeName)
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.currentDoctypeName = append(t.currentDoctypeName[:0], c)
			t.state = DoctypeNameState
			return
		}
	}
}

func (t *Tokenizer) stateDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			t.state = AfterDoctypeNameState
			return
		case c == '>':
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.currentDoctypeName = append(t.currentDoctypeName, c)
		}
	}
}

func (t *Tokenizer) stateAfterDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '>':
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.reconsumeCurrent()
			switch {
			case t.consumeCaseInsensitive("PUBLIC"):
				t.state = AfterDoctypePublicKeywordState
			case t.consumeCaseInsensitive("SYSTEM"):
				t.state = AfterDoctypeSystemKeywordState
			default:
				t.emitError(htmlerrors.InvalidCharacterSequenceAfterDoctypeName)
				t.state = BogusDoctypeState
			}
			return
		}
	}
}

func (t *Tokenizer) stateAfterDoctypePublicKeyword() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInDoctypeXML)
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(c):
		t.state = BeforeDoctypeIdentifierPublicState
	case c == '"' || c == '\'':
		t.emitError(htmlerrors.MissingWhitespaceAfterDoctypePublicKeyword)
		t.currentDoctypePublic = &[]rune{}
		t.reconsumeCurrent()
		if c == '"' {
			t.state = DoctypeIdentifierDoubleQuotedPublicState
		} else {
			t.state = DoctypeIdentifierSingleQuotedPublicState
		}
	case c == '>':
		t.emitError(htmlerrors.MissingDoctypePublicIdentifier)
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError(htmlerrors.MissingQuoteBeforeDoctypePublicIdentifier)
		t.reconsumeCurrent()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemKeyword() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInDoctypeXML)
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(c):
		t.state = BeforeDoctypeIdentifierSystemState
	case c == '"' || c == '\'':
		t.emitError(htmlerrors.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.currentDoctypeSystem = &[]rune{}
		t.reconsumeCurrent()
		if c == '"' {
			t.state = DoctypeIdentifierDoubleQuotedSystemState
		} else {
			t.state = DoctypeIdentifierSingleQuotedSystemState
		}
	case c == '>':
		t.emitError(htmlerrors.MissingDoctypeSystemIdentifier)
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError(htmlerrors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.reconsumeCurrent()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stateBeforeDoctypeIdentifierPublic() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '"':
			t.currentDoctypePublic = &[]rune{}
			t.state = DoctypeIdentifierDoubleQuotedPublicState
			return
		case c == '\'':
			t.currentDoctypePublic = &[]rune{}
			t.state = DoctypeIdentifierSingleQuotedPublicState
			return
		case c == '>':
			t.emitError(htmlerrors.MissingDoctypePublicIdentifier)
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.emitError(htmlerrors.MissingQuoteBeforeDoctypePublicIdentifier)
			t.reconsumeCurrent()
			t.state = BogusDoctypeState
			return
		}
	}
}

func (t *Tokenizer) stateBeforeDoctypeIdentifierSystem() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '"':
			t.currentDoctypeSystem = &[]rune{}
			t.state = DoctypeIdentifierDoubleQuotedSystemState
			return
		case c == '\'':
			t.currentDoctypeSystem = &[]rune{}
			t.state = DoctypeIdentifierSingleQuotedSystemState
			return
		case c == '>':
			t.emitError(htmlerrors.MissingDoctypeSystemIdentifier)
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.emitError(htmlerrors.MissingQuoteBeforeDoctypeSystemIdentifier)
			t.reconsumeCurrent()
			t.state = BogusDoctypeState
			return
		}
	}
}

func (t *Tokenizer) stateDoctypeIdentifierQuotedPublic(quote rune) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		if c == quote {
			t.state = AfterDoctypeIdentifierPublicState
			return
		}
		if c == '>' {
			t.emitError(htmlerrors.AbruptDoctypePublicIdentifier)
			t.emitDoctype()
			t.state = DataState
			return
		}
		*t.currentDoctypePublic = append(*t.currentDoctypePublic, c)
	}
}

func (t *Tokenizer) stateDoctypeIdentifierQuotedSystem(quote rune) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		if c == quote {
			t.state = AfterDoctypeIdentifierSystemState
			return
		}
		if c == '>' {
			t.emitError(htmlerrors.AbruptDoctypeSystemIdentifier)
			t.emitDoctype()
			t.state = DataState
			return
		}
		*t.currentDoctypeSystem = append(*t.currentDoctypeSystem, c)
	}
}

func (t *Tokenizer) stateAfterDoctypeIdentifierPublic() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInDoctypeXML)
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(c):
		t.state = BetweenDoctypePublicAndSystemIdentifiersState
	case c == '>':
		t.emitDoctype()
		t.state = DataState
	case c == '"' || c == '\'':
		t.emitError(htmlerrors.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.currentDoctypeSystem = &[]rune{}
		t.reconsumeCurrent()
		if c == '"' {
			t.state = DoctypeIdentifierDoubleQuotedSystemState
		} else {
			t.state = DoctypeIdentifierSingleQuotedSystemState
		}
	default:
		t.emitError(htmlerrors.UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.reconsumeCurrent()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stateAfterDoctypeIdentifierSystem() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(htmlerrors.EOFInDoctypeXML)
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch {
	case isWhitespace(c):
		return
	case c == '>':
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError(htmlerrors.UnexpectedCharacterAfterDoctypeSystemIdentifier)
		t.reconsumeCurrent()
		t.state = BogusDoctypeState
	}
}

func (t *Tokenizer) stateBetweenDoctypePublicAndSystemIdentifiers() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(htmlerrors.EOFInDoctypeXML)
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case isWhitespace(c):
			continue
		case c == '>':
			t.emitDoctype()
			t.state = DataState
			return
		case c == '"':
			t.currentDoctypeSystem = &[]rune{}
			t.state = DoctypeIdentifierDoubleQuotedSystemState
			return
		case c == '\'':
			t.currentDoctypeSystem = &[]rune{}
			t.state = DoctypeIdentifierSingleQuotedSystemState
			return
		default:
			t.emitError(htmlerrors.MissingQuoteBeforeDoctypeSystemIdentifier)
			t.reconsumeCurrent()
			t.state = BogusDoctypeState
			return
		}
	}
}

func (t *Tokenizer) stateBogusDoctype() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitDoctype()
			t.emitEOF()
			return
		}
		if c == '>' {
			t.emitDoctype()
			t.state = DataState
			return
		}
	}
}
