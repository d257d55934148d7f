// Package selector implements CSS selector parsing and matching.
package selector

import (
	"github.com/servo/justhtml5/dom"
)

// Parse parses a CSS selector string into its AST, accepting both a single
// complex selector (div > p.foo) and a comma-separated selector list.
func Parse(selector string) (selectorAST, error) {
	tokens, err := newTokenizer(selector).tokenize()
	if err != nil {
		return nil, err
	}
	return newParser(tokens, selector).parse()
}

// Match returns all elements in the subtree rooted at root (root included)
// that match the selector.
func Match(root *dom.Element, selector string) ([]*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	var results []*dom.Element
	matchDescendants(root, sel, &results)
	return results, nil
}

// MatchFirst returns the first element in document order (root included)
// that matches the selector, or nil if none do.
func MatchFirst(root *dom.Element, selector string) (*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	return findFirst(root, sel), nil
}

func matchDescendants(elem *dom.Element, sel selectorAST, results *[]*dom.Element) {
	if matchAST(elem, sel) {
		*results = append(*results, elem)
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			matchDescendants(childElem, sel, results)
		}
	}
}

func findFirst(elem *dom.Element, sel selectorAST) *dom.Element {
	if matchAST(elem, sel) {
		return elem
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := findFirst(childElem, sel); found != nil {
				return found
			}
		}
	}
	return nil
}

// init registers this package's Match/MatchFirst as the implementation
// behind dom.Element.Query/QueryFirst, breaking the import cycle dom would
// otherwise have with selector.
func init() {
	dom.SetSelectorMatch(Match)
	dom.SetSelectorMatchFirst(MatchFirst)
}
