package xmltreebuilder

import "strings"

// splitQName splits a qualified name into its prefix and local parts,
// grounded on xml5ever's QualNameTokenizer
// (_examples/original_source/xml5ever/src/tokenizer/qname.rs): the name is
// split at the LAST colon only if there is EXACTLY one colon in the whole
// name, with a non-empty local part after it and a non-empty prefix before
// it. A leading colon, a trailing colon, or two or more colons all fail the
// split and the entire string is returned as the local name with an empty
// prefix -- xml5ever's tokenizer invalidates the split the moment a second
// colon is seen rather than picking the last one.
func splitQName(qname string) (prefix, local string) {
	first := strings.IndexByte(qname, ':')
	if first < 0 || first == 0 || first == len(qname)-1 {
		return "", qname
	}
	if strings.IndexByte(qname[first+1:], ':') >= 0 {
		return "", qname
	}
	return qname[:first], qname[first+1:]
}
