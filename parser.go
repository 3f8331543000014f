// FILE: lixenwraith/dotenv/parser.go
package dotenv

import (
	"regexp"
	"strings"
)

var (
	assignmentPattern = regexp.MustCompile(`^(?:export )?([A-Za-z_0-9]+)=(.*)$`)
	quotedPattern     = regexp.MustCompile(`^'(.*)'$`)
	escapePattern     = regexp.MustCompile(`\\(.)`)
	variablePattern   = regexp.MustCompile(`\$\{[^}]*\}`)
)

// Assignment is one KEY=VALUE pair extracted from a source line.
// Value has quotes and escapes resolved but variable references still pending.
type Assignment struct {
	Key   string
	Value string
}

// LookupFunc resolves a variable name during expansion.
type LookupFunc func(name string) (string, bool)

// Parse extracts all assignments from dotenv content, in file order.
// Lines that do not match the assignment grammar are skipped.
func Parse(content string) []Assignment {
	var assignments []Assignment
	for _, line := range splitLines(content) {
		if a, ok := ParseLine(line); ok {
			assignments = append(assignments, a)
		}
	}
	return assignments
}

// ParseLine matches a single line against `(export )?NAME=VALUE`.
func ParseLine(line string) (Assignment, bool) {
	m := assignmentPattern.FindStringSubmatch(line)
	if m == nil {
		return Assignment{}, false
	}
	return Assignment{Key: m[1], Value: unquote(m[2])}, true
}

// unquote strips one layer of single quotes, then a second layer with
// backslash escapes resolved.
func unquote(value string) string {
	if m := quotedPattern.FindStringSubmatch(value); m != nil {
		value = m[1]
	}
	if m := quotedPattern.FindStringSubmatch(value); m != nil {
		value = escapePattern.ReplaceAllString(m[1], "$1")
	}
	return value
}

// Expand replaces each ${NAME} in value with lookup(NAME), or "" if absent.
// Substituted text is not scanned again.
func Expand(value string, lookup LookupFunc) string {
	if !strings.Contains(value, "${") {
		return value
	}
	return variablePattern.ReplaceAllStringFunc(value, func(ref string) string {
		name := ref[2 : len(ref)-1]
		if v, ok := lookup(name); ok {
			return v
		}
		return ""
	})
}

// splitLines breaks content on every Unicode line boundary.
// Empty lines are dropped since they never hold an assignment.
func splitLines(content string) []string {
	return strings.FieldsFunc(content, isLineBreak)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
