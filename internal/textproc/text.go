// Package textproc holds the string transforms and line sorter behind
// `corelab text`.
package textproc

import (
	"strings"
	"unicode"
)

// MaxTextLength bounds the text argument of a single command.
const MaxTextLength = 1023

func Upper(s string) string { return strings.ToUpper(s) }

func Lower(s string) string { return strings.ToLower(s) }

// Reverse reverses s rune by rune so multi-byte characters survive.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// CountChar counts occurrences of c in s.
func CountChar(s string, c rune) int {
	n := 0
	for _, r := range s {
		if r == c {
			n++
		}
	}
	return n
}

// Trim strips leading and trailing whitespace and collapses every inner run
// of whitespace to a single space.
func Trim(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// Replace substitutes every occurrence of find. An empty find leaves s
// unchanged.
func Replace(s, find, repl string) string {
	if find == "" {
		return s
	}
	return strings.ReplaceAll(s, find, repl)
}
