// Package source reads and writes themes as object-initializer source text:
// the narrow dialect of nested "Name = new Type() { Prop = value, ... }"
// blocks that Encode emits. It is not a general purpose parser.
package source

import (
	"strings"

	"github.com/unkn0wn-root/themekit/internal/errdef"
)

type scanMode int

const (
	modeCode scanMode = iota
	modeString
	modeLineComment
	modeBlockComment
)

// scanState tracks whether the cursor sits in code, a string literal or a
// comment. Braces only count in code.
type scanState struct {
	mode   scanMode
	escape bool
}

// advance consumes s[*i] (and a second byte for comment openers/closers)
// and reports whether the byte at the original position is code.
func (st *scanState) advance(s string, i *int) bool {
	c := s[*i]
	switch st.mode {
	case modeString:
		if st.escape {
			st.escape = false
			return false
		}
		switch c {
		case '\\':
			st.escape = true
		case '"':
			st.mode = modeCode
		}
		return false
	case modeLineComment:
		if c == '\n' {
			st.mode = modeCode
		}
		return false
	case modeBlockComment:
		if c == '*' && *i+1 < len(s) && s[*i+1] == '/' {
			st.mode = modeCode
			*i++
		}
		return false
	}

	switch c {
	case '"':
		st.mode = modeString
		return false
	case '/':
		if *i+1 < len(s) {
			switch s[*i+1] {
			case '/':
				st.mode = modeLineComment
				*i++
				return false
			case '*':
				st.mode = modeBlockComment
				*i++
				return false
			}
		}
	}
	return true
}

// ExtractSection finds the first case-insensitive occurrence of marker in
// code and returns the balanced {...} block that follows it, braces
// included. Markers, braces and brackets inside string literals and
// comments are ignored.
func ExtractSection(text, marker string) (string, error) {
	at := indexCodeFold(text, marker)
	if at < 0 {
		return "", errdef.New(errdef.CodeNotFound, "section %q not found", marker)
	}
	block, ok := balancedAfter(text, at+len(marker), '{', '}')
	if !ok {
		return "", errdef.New(errdef.CodeNotFound, "section %q is not closed", marker)
	}
	return block, nil
}

// balancedAfter scans from start to the first code-level open rune and
// returns the block up to its matching close.
func balancedAfter(text string, start int, open, close byte) (string, bool) {
	var st scanState
	begin := -1
	depth := 0
	for i := start; i < len(text); i++ {
		pos := i
		if !st.advance(text, &i) {
			continue
		}
		switch text[pos] {
		case open:
			if begin < 0 {
				begin = pos
			}
			depth++
		case close:
			if begin < 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[begin : pos+1], true
			}
		}
	}
	return "", false
}

// inner strips the outer delimiters of a block returned by balancedAfter.
func inner(block string) string {
	if len(block) < 2 {
		return ""
	}
	return block[1 : len(block)-1]
}

// codeMask marks the bytes of text that are code rather than part of a
// string literal or comment.
func codeMask(text string) []bool {
	mask := make([]bool, len(text))
	var st scanState
	for i := 0; i < len(text); i++ {
		pos := i
		mask[pos] = st.advance(text, &i)
	}
	return mask
}

// indexCodeFold is a case-insensitive strings.Index that only accepts
// matches starting in code.
func indexCodeFold(s, sub string) int {
	n := len(sub)
	if n == 0 {
		return 0
	}
	mask := codeMask(s)
	for i := 0; i+n <= len(s); i++ {
		if mask[i] && strings.EqualFold(s[i:i+n], sub) {
			return i
		}
	}
	return -1
}

// splitItems splits an array body into elements. Quoted literals are items
// on their own, so a missing comma between two literals still separates
// them; unquoted runs are split on commas. Comments are skipped. Empty bare
// elements are dropped but "" is kept, so positions stay aligned.
func splitItems(body string) []string {
	var (
		items   []string
		bare    strings.Builder
		literal strings.Builder
		st      scanState
		quoted  bool
	)
	flush := func() {
		if !quoted {
			if v := strings.TrimSpace(bare.String()); v != "" {
				items = append(items, v)
			}
		}
		bare.Reset()
		quoted = false
	}
	for i := 0; i < len(body); i++ {
		pos := i
		wasString := st.mode == modeString
		code := st.advance(body, &i)
		c := body[pos]
		switch {
		case wasString:
			if st.mode == modeCode && !st.escape && c == '"' {
				items = append(items, literal.String())
				literal.Reset()
				quoted = true
				continue
			}
			if c == '\\' && st.escape {
				continue
			}
			literal.WriteByte(c)
		case !code:
			if st.mode == modeString {
				literal.Reset()
			}
		case c == ',':
			flush()
		default:
			if !quoted {
				bare.WriteByte(c)
			}
		}
	}
	flush()
	return items
}
