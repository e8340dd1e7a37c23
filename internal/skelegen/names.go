package skelegen

import (
	"strings"

	"github.com/gosimple/slug"
)

// NormalizeVariableName trims the name, turns whitespace into dashes and
// makes sure it starts with --
func NormalizeVariableName(name string) string {
	name = strings.Join(strings.Fields(name), "-")
	if name == "" {
		return ""
	}
	return "--" + strings.TrimLeft(name, "-")
}

// NormalizeSelector prefixes bare generated names with a class dot.
// Selectors that already start with a selector token are left alone.
func NormalizeSelector(selector string) string {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return ""
	}
	switch selector[0] {
	case '.', '#', ':', '[', '*', '&', '@':
		return selector
	}
	return "." + selector
}

// ClassNameFromLabel turns a human label ("Primary Button") into a class
// identifier ("primary-button"). Names that are already identifiers are kept.
func ClassNameFromLabel(label string) string {
	label = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(label), "."))
	if isIdentifier(label) {
		return label
	}
	s := slug.Make(label)
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "c-" + s
	}
	return s
}

// baseClassName strips the "-*" pattern suffix of a generator class name and
// normalizes it to a class selector: "p-*" -> ".p"
func baseClassName(pattern string) string {
	return NormalizeSelector(strings.TrimSuffix(strings.TrimSpace(pattern), "-*"))
}

// isIdentifier reports whether s is a plain CSS class identifier
func isIdentifier(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
