// Package encoding implements HTML5 encoding detection and decoding.
//
// The sniffing algorithm (transport hint, BOM, <meta charset> prescan,
// windows-1252 fallback) is this package's own, modeled on the HTML5 spec; the
// actual byte-to-UTF-8 transform for each resolved encoding is delegated to
// golang.org/x/text/encoding, with golang.org/x/net/html/charset supplying
// the IANA label table so label normalization doesn't need a hand-rolled
// alias list for encodings outside the small set HTML5 special-cases.
package encoding

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned when the specified encoding is not supported.
var ErrInvalidEncoding = errors.New("unsupported or invalid encoding")

// Encoding represents a character encoding recognized by the HTML5 sniffing
// algorithm. transform is nil for UTF-8 (the identity transform).
type Encoding struct {
	// Name is the canonical name of the encoding.
	Name string

	// Labels are the encoding labels that map to this encoding.
	Labels []string

	// transform is the golang.org/x/text/encoding codec that performs the
	// actual byte decoding. nil means UTF-8 (no transform needed).
	transform encoding.Encoding
}

// Common encodings. Labels mirror the WHATWG Encoding Standard's label list
// for the subset of encodings HTML5's sniffing algorithm special-cases;
// anything else falls through to charset.Lookup (see normalizeEncodingLabel).
var (
	UTF8 = &Encoding{
		Name: "UTF-8",
		Labels: []string{
			"utf-8", "utf8", "unicode-1-1-utf-8",
			"unicode11utf8", "unicode20utf8", "x-unicode20utf8",
		},
	}
	Windows1252 = &Encoding{
		Name: "windows-1252",
		Labels: []string{
			"windows-1252", "windows1252", "cp1252", "x-cp1252",
			"ansi_x3.4-1968", "ascii", "us-ascii",
			"iso-ir-100", "csisolatin1",
		},
		transform: charmap.Windows1252,
	}
	ISO88591 = &Encoding{
		Name: "ISO-8859-1",
		Labels: []string{
			"iso-8859-1", "iso8859-1", "iso88591",
			"iso_8859-1", "iso_8859-1:1987",
			"latin1", "latin-1", "l1",
			"cp819", "ibm819",
		},
		transform: charmap.ISO8859_1,
	}
	ISO88592 = &Encoding{
		Name: "iso-8859-2",
		Labels: []string{
			"iso-8859-2", "iso8859-2", "iso88592",
			"iso_8859-2", "iso_8859-2:1987",
			"iso-ir-101", "csisolatin2",
			"latin2", "latin-2", "l2",
		},
		transform: charmap.ISO8859_2,
	}
	EUCJP = &Encoding{
		Name: "euc-jp",
		Labels: []string{
			"euc-jp", "eucjp",
			"cseucpkdfmtjapanese", "x-euc-jp",
		},
		transform: japanese.EUCJP,
	}
	UTF16 = &Encoding{
		Name:      "utf-16",
		Labels:    []string{"utf-16", "utf16"},
		transform: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	}
	UTF16LE = &Encoding{
		Name:      "utf-16le",
		Labels:    []string{"utf-16le", "utf16le"},
		transform: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	}
	UTF16BE = &Encoding{
		Name:      "utf-16be",
		Labels:    []string{"utf-16be", "utf16be"},
		transform: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	}
)

// ASCII whitespace characters per HTML5 spec
var asciiWhitespace = map[byte]bool{
	0x09: true, // TAB
	0x0A: true, // LF
	0x0C: true, // FF
	0x0D: true, // CR
	0x20: true, // SPACE
}

// Decode decodes HTML bytes to a string using encoding detection.
//
// The encoding is chosen in this order:
// 1. Provided encoding hint (transport encoding), if its label is
// recognized; a leading BOM is then skipped, not used
// 2. BOM (Byte Order Mark)
// 3. <meta charset> in the first 1024 bytes (non-comment content)
// 4. Fallback to windows-1252
func Decode(data []byte, hint string) (string, *Encoding, error) {
	// Use hint if provided (transport encoding)
	if hint != "" {
		if enc := normalizeEncodingLabel(hint); enc != nil {
			bom := detectBOM(data)
			bomLen := 0
			if bom != nil {
				bomLen = bomLength(bom)
			}
			decoded, err := decodeWithEncoding(data[bomLen:], enc)
			return decoded, enc, err
		}
	}

	// Check for BOM
	if enc := detectBOM(data); enc != nil {
		bomLen := bomLength(enc)
		decoded, err := decodeWithEncoding(data[bomLen:], enc)
		return decoded, enc, err
	}

	// Scan for meta charset
	if enc := prescanForMetaCharset(data); enc != nil {
		decoded, err := decodeWithEncoding(data, enc)
		return decoded, enc, err
	}

	// Fallback to windows-1252
	decoded, err := decodeWithEncoding(data, Windows1252)
	return decoded, Windows1252, err
}

// detectBOM checks for a Byte Order Mark and returns the corresponding encoding.
func detectBOM(data []byte) *Encoding {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return UTF8
	}
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return UTF16LE
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return UTF16BE
	}
	return nil
}

const (
	utf16BEName = "utf-16be"
	utf16LEName = "utf-16le"
)

// bomLength returns the length of the BOM for the given encoding.
func bomLength(enc *Encoding) int {
	switch enc.Name {
	case "UTF-8":
		return 3
	case utf16LEName, utf16BEName:
		return 2
	default:
		return 0
	}
}

// normalizeEncodingLabel normalizes an encoding label to a canonical encoding.
// Returns nil if the label is not recognized.
func normalizeEncodingLabel(label string) *Encoding {
	if label == "" {
		return nil
	}

	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil
	}

	// Security: never allow utf-7
	if label == "utf-7" || label == "utf7" || label == "x-utf-7" {
		return Windows1252
	}

	// Try the small set of encodings HTML5 special-cases (these have
	// sniffing-algorithm-specific behavior, like ISO-8859-1 coercing to
	// windows-1252, that a generic label lookup wouldn't know to apply).
	encodings := []*Encoding{UTF8, Windows1252, ISO88591, ISO88592, EUCJP, UTF16, UTF16LE, UTF16BE}
	for _, enc := range encodings {
		for _, l := range enc.Labels {
			if l == label {
				// HTML treats ISO-8859-1 labels as windows-1252
				if enc == ISO88591 {
					return Windows1252
				}
				return enc
			}
		}
	}

	// Fall through to the IANA label table for anything else (e.g.
	// shift_jis, gbk, euc-kr, iso-8859-15, ...) rather than hand-maintaining
	// every alias HTML5 permits.
	return fromCharsetLookup(label)
}

// fromCharsetLookup resolves a label via golang.org/x/net/html/charset's
// IANA table and wraps the result as an *Encoding usable by decodeWithEncoding.
func fromCharsetLookup(label string) *Encoding {
	enc, canonicalName := charset.Lookup(label)
	if enc == nil {
		return nil
	}
	return &Encoding{Name: canonicalName, Labels: []string{label}, transform: enc}
}

// normalizeMetaDeclaredEncoding normalizes a meta-declared encoding.
// Per HTML spec, UTF-16/UTF-32 in meta declarations are treated as UTF-8.
func normalizeMetaDeclaredEncoding(label []byte) *Encoding {
	enc := normalizeEncodingLabel(string(label))
	if enc == nil {
		return nil
	}

	// Per HTML meta charset handling: ignore UTF-16/UTF-32 declarations
	switch enc.Name {
	case "utf-16", utf16LEName, utf16BEName, "utf-32", "utf-32le", "utf-32be":
		return UTF8
	}

	return enc
}

// isASCIIWhitespace checks if a byte is ASCII whitespace.
func isASCIIWhitespace(b byte) bool {
	return asciiWhitespace[b]
}

// isASCIIAlpha checks if a byte is an ASCII letter.
func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// asciiLower converts an ASCII letter to lowercase.
func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}

// skipASCIIWhitespace skips ASCII whitespace starting at position i.
func skipASCIIWhitespace(data []byte, i int) int {
	n := len(data)
	for i < n && isASCIIWhitespace(data[i]) {
		i++
	}
	return i
}

// stripASCIIWhitespace removes leading and trailing ASCII whitespace.
func stripASCIIWhitespace(value []byte) []byte {
	start := 0
	end := len(value)
	for start < end && isASCIIWhitespace(value[start]) {
		start++
	}
	for end > start && isASCIIWhitespace(value[end-1]) {
		end--
	}
	return value[start:end]
}

// extractCharsetFromContent extracts a charset value from a Content-Type meta content attribute.
func extractCharsetFromContent(contentBytes []byte) []byte {
	if len(contentBytes) == 0 {
		return nil
	}

	// Normalize whitespace to spaces and convert to lowercase
	b := make([]byte, len(contentBytes))
	for i, ch := range contentBytes {
		if isASCIIWhitespace(ch) {
			b[i] = ' '
		} else {
			b[i] = asciiLower(ch)
		}
	}

	idx := bytes.Index(b, []byte("charset"))
	if idx == -1 {
		return nil
	}

	i := idx + len("charset")
	n := len(b)

	// Skip whitespace
	for i < n && b[i] == ' ' {
		i++
	}

	// Expect '='
	if i >= n || b[i] != '=' {
		return nil
	}
	i++

	// Skip whitespace
	for i < n && b[i] == ' ' {
		i++
	}

	if i >= n {
		return nil
	}

	// Check for quote
	var quote byte
	if b[i] == '"' || b[i] == '\'' {
		quote = b[i]
		i++
	}

	start := i
	for i < n {
		ch := b[i]
		if quote != 0 {
			if ch == quote {
				break
			}
		} else {
			if ch == ' ' || ch == ';' {
				break
			}
		}
		i++
	}

	// If quoted, we must find the closing quote
	if quote != 0 && (i >= n || b[i] != quote) {
		return nil
	}

	return b[start:i]
}

// prescanForMetaCharset scans the first 1024 bytes of non-comment content
// for a meta charset declaration per HTML5 spec.
//
//nolint:gocognit,gocyclo,nestif,cyclop,funlen,maintidx // Complexity required by HTML5 spec algorithm
func prescanForMetaCharset(data []byte) *Encoding {
	// Scan up to 1024 bytes of non-comment input, but allow skipping
	// arbitrarily large comments (bounded by a hard cap).
	const maxNonComment = 1024
	const maxTotalScan = 65536

	n := len(data)
	i := 0
	nonComment := 0

	for i < n && i < maxTotalScan && nonComment < maxNonComment {
		if data[i] != '<' {
			i++
			nonComment++
			continue
		}

		// Check for comment
		if i+3 < n && data[i+1] == '!' && data[i+2] == '-' && data[i+3] == '-' {
			end := bytes.Index(data[i+4:], []byte("-->"))
			if end == -1 {
				return nil
			}
			i = i + 4 + end + 3
			continue
		}

		// Tag open
		j := i + 1
		if j < n && data[j] == '/' {
			// End tag - skip it
			k := i
			var quote byte
			for k < n && k < maxTotalScan && nonComment < maxNonComment {
				ch := data[k]
				if quote == 0 {
					if ch == '"' || ch == '\'' {
						quote = ch
					} else if ch == '>' {
						k++
						nonComment++
						break
					}
				} else {
					if ch == quote {
						quote = 0
					}
				}
				k++
				nonComment++
			}
			i = k
			continue
		}

		if j >= n || !isASCIIAlpha(data[j]) {
			i++
			nonComment++
			continue
		}

		// Read tag name
		nameStart := j
		for j < n && isASCIIAlpha(data[j]) {
			j++
		}

		tagName := data[nameStart:j]
		if !bytes.Equal(bytes.ToLower(tagName), []byte("meta")) {
			// Skip the rest of this tag
			k := i
			var quote byte
			for k < n && k < maxTotalScan && nonComment < maxNonComment {
				ch := data[k]
				if quote == 0 {
					if ch == '"' || ch == '\'' {
						quote = ch
					} else if ch == '>' {
						k++
						nonComment++
						break
					}
				} else {
					if ch == quote {
						quote = 0
					}
				}
				k++
				nonComment++
			}
			i = k
			continue
		}

		// Parse attributes until '>'
		var charset []byte
		var httpEquiv []byte
		var content []byte

		k := j
		sawGT := false
		startI := i

		for k < n && k < maxTotalScan {
			ch := data[k]

			if ch == '>' {
				sawGT = true
				k++
				break
			}

			if ch == '<' {
				// Restart scanning from here
				break
			}

			if isASCIIWhitespace(ch) || ch == '/' {
				k++
				continue
			}

			// Attribute name
			attrStart := k
			for k < n {
				ch = data[k]
				if isASCIIWhitespace(ch) || ch == '=' || ch == '>' || ch == '/' || ch == '<' {
					break
				}
				k++
			}
			attrName := bytes.ToLower(data[attrStart:k])
			k = skipASCIIWhitespace(data, k)

			var value []byte
			if k < n && data[k] == '=' {
				k++
				k = skipASCIIWhitespace(data, k)
				if k >= n {
					break
				}

				var quote byte
				if data[k] == '"' || data[k] == '\'' {
					quote = data[k]
					k++
					valStart := k
					endQuote := bytes.IndexByte(data[k:], quote)
					if endQuote == -1 {
						// Unclosed quote: ignore this meta
						i++
						nonComment++
						charset = nil
						httpEquiv = nil
						content = nil
						sawGT = false
						break
					}
					value = data[valStart : k+endQuote]
					k = k + endQuote + 1
				} else {
					valStart := k
					for k < n {
						ch = data[k]
						if isASCIIWhitespace(ch) || ch == '>' || ch == '<' {
							break
						}
						k++
					}
					value = data[valStart:k]
				}
			}

			switch {
			case bytes.Equal(attrName, []byte("charset")):
				charset = stripASCIIWhitespace(value)
			case bytes.Equal(attrName, []byte("http-equiv")):
				httpEquiv = value
			case bytes.Equal(attrName, []byte("content")):
				content = value
			}
		}

		if sawGT {
			// Check for charset attribute
			if charset != nil {
				enc := normalizeMetaDeclaredEncoding(charset)
				if enc != nil {
					return enc
				}
			}

			// Check for http-equiv="Content-Type" content="..."
			if httpEquiv != nil && bytes.Equal(bytes.ToLower(httpEquiv), []byte("content-type")) && content != nil {
				extracted := extractCharsetFromContent(content)
				if extracted != nil {
					enc := normalizeMetaDeclaredEncoding(extracted)
					if enc != nil {
						return enc
					}
				}
			}

			// Continue scanning after this tag
			i = k
			consumed := i - startI
			nonComment += consumed
		} else {
			// Continue scanning
			i++
			nonComment++
		}
	}

	return nil
}

// decodeWithEncoding decodes data using the specified encoding, delegating
// the actual byte transform to golang.org/x/text/encoding.
func decodeWithEncoding(data []byte, enc *Encoding) (string, error) {
	if enc.Name == "UTF-8" {
		// UTF-8: strings.ToValidUTF8 substitutes U+FFFD for any invalid
		// sequence, matching the HTML5 spec's UTF-8 decode algorithm.
		return strings.ToValidUTF8(string(data), "\uFFFD"), nil
	}

	if enc.transform == nil {
		return "", ErrInvalidEncoding
	}

	if strings.HasPrefix(enc.Name, "utf-16") && len(data)%2 != 0 {
		// A trailing unpaired byte can't form a UTF-16 code unit; pad it
		// with a zero byte rather than rejecting the whole input.
		data = append(data[:len(data):len(data)], 0)
	}

	if enc.Name == "utf-16" {
		// Generic "utf-16" sniffs its own BOM to pick endianness, falling
		// back to little-endian when none is present.
		decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()), data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}

	decoded, err := enc.transform.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
