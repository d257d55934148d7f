// Command justhtml is a minimal CLI smoke test for this module's own
// parse/query/serialize packages, independent of cmd/justgohtml's
// goquery-backed -query flag: every transform here goes through this
// repo's own dom.Document and selector.Match, never an external DOM.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/servo/justhtml5"
	"github.com/servo/justhtml5/dom"
	"github.com/servo/justhtml5/serialize"
	_ "github.com/servo/justhtml5/selector"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	selector := flag.String("selector", "", "CSS selector to filter output")
	selectorShort := flag.String("s", "", "CSS selector to filter output (shorthand)")
	format := flag.String("format", "html", "Output format: html, text, markdown")
	formatShort := flag.String("f", "", "Output format (shorthand)")
	first := flag.Bool("first", false, "Output only first match")
	separator := flag.String("separator", " ", "Separator for text output")
	strip := flag.Bool("strip", true, "Strip whitespace from text")
	pretty := flag.Bool("pretty", true, "Pretty-print HTML output")
	indent := flag.Int("indent", 2, "Indentation size for pretty-print")
	showVersion := flag.Bool("version", false, "Show version")
	versionShort := flag.Bool("v", false, "Show version (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Parse and query HTML documents.\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file    HTML file path or '-' for stdin\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *selectorShort != "" && *selector == "" {
		*selector = *selectorShort
	}
	if *formatShort != "" && *format == "html" {
		*format = *formatShort
	}

	if *showVersion || *versionShort {
		fmt.Printf("justhtml version %s\n", version)
		return nil
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing input file")
	}

	inputPath := args[0]

	var input []byte
	var err error
	if inputPath == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	doc, err := justhtml5.ParseBytes(input)
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	var nodes []dom.Node
	if *selector != "" {
		matches, err := doc.Query(*selector)
		if err != nil {
			return fmt.Errorf("selector %q: %w", *selector, err)
		}
		if *first && len(matches) > 1 {
			matches = matches[:1]
		}
		for _, el := range matches {
			nodes = append(nodes, el)
		}
	} else {
		nodes = []dom.Node{doc}
	}

	fmt.Print(render(nodes, *format, *separator, *strip, *pretty, *indent))
	return nil
}

func render(nodes []dom.Node, format, separator string, strip, pretty bool, indent int) string {
	var parts []string
	for _, n := range nodes {
		switch format {
		case "text":
			text := extractText(n)
			if strip {
				text = strings.Join(strings.Fields(text), " ")
			}
			if text != "" {
				parts = append(parts, text)
			}
		case "markdown":
			if md := serialize.ToMarkdown(n); md != "" {
				parts = append(parts, md)
			}
		default:
			parts = append(parts, serialize.ToHTML(n, serialize.Options{Pretty: pretty, IndentSize: indent}))
		}
	}

	if format == "text" {
		out := strings.Join(parts, separator)
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out
	}

	out := strings.Join(parts, "\n")
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func extractText(node dom.Node) string {
	var sb strings.Builder
	extractTextRecursive(node, &sb)
	return sb.String()
}

func extractTextRecursive(node dom.Node, sb *strings.Builder) {
	switch n := node.(type) {
	case *dom.Text:
		sb.WriteString(n.Data)
	default:
		for _, child := range node.Children() {
			extractTextRecursive(child, sb)
		}
	}
}
