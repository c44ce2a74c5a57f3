package main

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// mapDeclarationPattern matches the start of a line declaring a map field:
//
//	map<key_type, value_type> map_field = N;
//
// Only the prefix is anchored. Anything after the semicolon is ignored.
// Word, digit and space classes are the Unicode ones, not RE2's ASCII \w, \d and \s.
var mapDeclarationPattern = regexp.MustCompile(strings.NewReplacer(
	`\w`, `[\p{L}\p{N}_]`,
	`\d`, `\p{Nd}`,
	`\s`, `[\s\v\p{Z}\x1c-\x1f\x85]`,
).Replace(`^(\s*)map<(\w+)\s*,\s*(\w+)>\s+(\w+)\s*=\s*(\d+)\s*;`))

// mapDeclaration holds the parts of a matched map field declaration.
type mapDeclaration struct {
	Indent      string // leading whitespace, repeated on every generated line
	KeyType     string
	ValueType   string
	FieldName   string
	FieldNumber string // digits as written, not validated
}

// parseMapDeclaration reports whether line starts with a map field
// declaration and, if so, returns its parts.
func parseMapDeclaration(line string) (mapDeclaration, bool) {
	m := mapDeclarationPattern.FindStringSubmatch(line)
	if m == nil {
		return mapDeclaration{}, false
	}
	return mapDeclaration{
		Indent:      m[1],
		KeyType:     m[2],
		ValueType:   m[3],
		FieldName:   m[4],
		FieldNumber: m[5],
	}, true
}

// EntryName returns the name of the message holding one key/value pair,
// e.g. MyMapFieldEntry for my_map_field.
func (d mapDeclaration) EntryName() string {
	return entryName(d.FieldName)
}

func entryName(fieldName string) string {
	parts := strings.Split(fieldName, "_")
	for i, part := range parts {
		parts[i] = upperFirst(part)
	}
	return strings.Join(parts, "") + "Entry"
}

// upperFirst upper-cases the first rune of s and leaves the rest alone.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
