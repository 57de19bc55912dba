// Package tokenizer splits command lines into a command path and a list of
// whitespace separated, quote aware arguments.
package tokenizer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeQuotes drops empty markers and markers containing whitespace,
// removes duplicates and orders the rest longest first so that a marker is
// always tried before any of its prefixes.
func NormalizeQuotes(quotes ...string) []string {
	seen := make(map[string]bool, len(quotes))
	out := make([]string, 0, len(quotes))

	for _, q := range quotes {
		if q == "" || strings.IndexFunc(q, unicode.IsSpace) >= 0 || seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})

	return out
}

// Tokenize splits text on runs of whitespace. A token that starts with one
// of the quote markers runs until the next unescaped occurrence of the same
// marker that ends a token, so it may contain whitespace; the markers are
// removed. One level of backslash escaping is removed from every token.
func Tokenize(text string, quotes ...string) []string {
	markers := NormalizeQuotes(quotes...)
	tokens := make([]string, 0)

	i := skipSpace(text, 0)
	for i < len(text) {
		if end, body, ok := quoted(text, i, markers); ok {
			tokens = append(tokens, Unescape(body))
			i = skipSpace(text, end)
			continue
		}

		end := nextSpace(text, i)
		tokens = append(tokens, Unescape(text[i:end]))
		i = skipSpace(text, end)
	}

	return tokens
}

// ParseCommandLine splits text at its first run of whitespace. pathname is
// everything before it and argname everything after it; either may be empty.
func ParseCommandLine(text string) (pathname, argname string) {
	end := nextSpace(text, 0)
	pathname = text[:end]
	if end < len(text) {
		argname = text[skipSpace(text, end):]
	}
	return pathname, argname
}

// Unescape removes one level of backslash escaping. A trailing backslash
// with nothing to escape is kept.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// quoted tries each marker at position start. It returns the end of the
// quoted token and its body without the markers.
func quoted(text string, start int, markers []string) (int, string, bool) {
	for _, m := range markers {
		if !strings.HasPrefix(text[start:], m) {
			continue
		}

		bodyStart := start + len(m)
		pos := bodyStart
		for pos <= len(text) {
			k := strings.Index(text[pos:], m)
			if k < 0 {
				break
			}
			k += pos
			closeEnd := k + len(m)
			if !escaped(text, bodyStart, k) && atBoundary(text, closeEnd) {
				return closeEnd, text[bodyStart:k], true
			}
			pos = k + 1
		}
	}
	return 0, "", false
}

// escaped reports whether the byte at pos is preceded by an odd number of
// backslashes, counting no further back than floor.
func escaped(text string, floor, pos int) bool {
	n := 0
	for j := pos - 1; j >= floor && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func atBoundary(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsSpace(r)
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func nextSpace(text string, i int) int {
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
