package dom

// Text represents a text node.
type Text struct {
	parent Node

	// Data is the text content.
	Data string
}

// NewText creates a new text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// Type implements Node.
func (t *Text) Type() NodeType {
	return TextNodeType
}

// Parent implements Node.
func (t *Text) Parent() Node {
	return t.parent
}

// SetParent implements Node.
func (t *Text) SetParent(parent Node) {
	t.parent = parent
}

// Children implements Node (text nodes have no children).
func (t *Text) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for text nodes).
func (t *Text) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for text nodes).
func (t *Text) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for text nodes).
func (t *Text) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for text nodes: always returns nil).
func (t *Text) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node (text nodes never have children).
func (t *Text) HasChildNodes() bool { return false }

// Clone implements Node.
func (t *Text) Clone(_ bool) Node {
	return &Text{Data: t.Data}
}

// Comment represents a comment node.
type Comment struct {
	parent Node

	// Data is the comment content (without <!-- and -->).
	Data string
}

// NewComment creates a new comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// Type implements Node.
func (c *Comment) Type() NodeType {
	return CommentNodeType
}

// Parent implements Node.
func (c *Comment) Parent() Node {
	return c.parent
}

// SetParent implements Node.
func (c *Comment) SetParent(parent Node) {
	c.parent = parent
}

// Children implements Node (comment nodes have no children).
func (c *Comment) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for comment nodes).
func (c *Comment) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for comment nodes).
func (c *Comment) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for comment nodes).
func (c *Comment) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for comment nodes: always returns nil).
func (c *Comment) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node (comment nodes never have children).
func (c *Comment) HasChildNodes() bool { return false }

// Clone implements Node.
func (c *Comment) Clone(_ bool) Node {
	return &Comment{Data: c.Data}
}

// ProcessingInstruction represents an XML processing instruction node
// (`<?target data?>`), produced only by the XML5 tokenizer/tree builder --
// HTML5 has no processing-instruction token and folds `<?...?>` into a
// bogus comment instead (spec.md §4.4).
type ProcessingInstruction struct {
	parent Node

	// Target is the PI target (the name immediately after "<?").
	Target string

	// Data is the remainder of the PI, after the target and its
	// separating whitespace.
	Data string
}

// NewProcessingInstruction creates a new processing-instruction node.
func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{Target: target, Data: data}
}

// Type implements Node.
func (p *ProcessingInstruction) Type() NodeType {
	return ProcessingInstructionNodeType
}

// Parent implements Node.
func (p *ProcessingInstruction) Parent() Node {
	return p.parent
}

// SetParent implements Node.
func (p *ProcessingInstruction) SetParent(parent Node) {
	p.parent = parent
}

// Children implements Node (PI nodes have no children).
func (p *ProcessingInstruction) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for PI nodes).
func (p *ProcessingInstruction) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for PI nodes).
func (p *ProcessingInstruction) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for PI nodes).
func (p *ProcessingInstruction) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for PI nodes: always returns nil).
func (p *ProcessingInstruction) ReplaceChild(_, _ Node) Node { return nil }

// HasChildNodes implements Node (PI nodes never have children).
func (p *ProcessingInstruction) HasChildNodes() bool { return false }

// Clone implements Node.
func (p *ProcessingInstruction) Clone(_ bool) Node {
	return &ProcessingInstruction{Target: p.Target, Data: p.Data}
}
