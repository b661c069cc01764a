package source

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var patternCache sync.Map

func cachedPattern(key string, build func() string) *regexp.Regexp {
	if re, ok := patternCache.Load(key); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(build())
	actual, _ := patternCache.LoadOrStore(key, re)
	return actual.(*regexp.Regexp)
}

// The leading group anchors the name on an identifier boundary so that
// "Dark" never matches inside "OverlayDark".
const boundary = `(?i)(?:^|[^\w])`

func scalarPattern(name string) *regexp.Regexp {
	return cachedPattern("scalar:"+strings.ToLower(name), func() string {
		return boundary + regexp.QuoteMeta(name) +
			`\s*=\s*(?:"((?:[^"\\]|\\.)*)"|([^,}\s]+))`
	})
}

func nestedPattern(name string) *regexp.Regexp {
	return cachedPattern("nested:"+strings.ToLower(name), func() string {
		return boundary + regexp.QuoteMeta(name) + `\s*=\s*new\b[^{;]*\{`
	})
}

func arrayPattern(name string) *regexp.Regexp {
	return cachedPattern("array:"+strings.ToLower(name), func() string {
		return boundary + regexp.QuoteMeta(name) +
			`\s*=\s*(?:new\s*(?:string\s*)?\[\s*\]\s*(\{)|(\[))`
	})
}

// findInCode returns the submatch indexes of the first match of re whose
// property name starts in code, skipping matches in comments and strings.
func findInCode(re *regexp.Regexp, text string) []int {
	var mask []bool
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if mask == nil {
			mask = codeMask(text)
		}
		name := m[0]
		if name < len(text) && !isWordByte(text[name]) {
			name++
		}
		if name < len(mask) && mask[name] {
			return m
		}
	}
	return nil
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ExtractScalar returns the value assigned to name inside section. Quoted
// values come back unescaped; bare tokens lose a trailing numeric suffix
// such as the d in 0.04d.
func ExtractScalar(section, name string) (string, bool) {
	m := findInCode(scalarPattern(name), section)
	if m == nil {
		return "", false
	}
	if m[2] >= 0 {
		return unescape(section[m[2]:m[3]]), true
	}
	return trimNumericSuffix(section[m[4]:m[5]]), true
}

// ExtractNestedScalar looks up "subsection = new ... { ... }" anywhere in
// text and returns name's value from inside that block.
func ExtractNestedScalar(text, subsection, name string) (string, bool) {
	block, ok := nestedBlock(text, subsection)
	if !ok {
		return "", false
	}
	return ExtractScalar(block, name)
}

func nestedBlock(text, subsection string) (string, bool) {
	loc := findInCode(nestedPattern(subsection), text)
	if loc == nil {
		return "", false
	}
	return balancedAfter(text, loc[1]-1, '{', '}')
}

// ExtractArray returns the elements of "name = new[] { ... }",
// "name = new string[] { ... }" or "name = [ ... ]".
func ExtractArray(section, name string) ([]string, bool) {
	m := findInCode(arrayPattern(name), section)
	if m == nil {
		return nil, false
	}
	var (
		block string
		ok    bool
	)
	if m[2] >= 0 {
		block, ok = balancedAfter(section, m[2], '{', '}')
	} else {
		block, ok = balancedAfter(section, m[4], '[', ']')
	}
	if !ok {
		return nil, false
	}
	return splitItems(inner(block)), true
}

func trimNumericSuffix(token string) string {
	token = strings.TrimSpace(token)
	if len(token) < 2 {
		return token
	}
	switch token[len(token)-1] {
	case 'd', 'D', 'f', 'F', 'm', 'M':
		head := token[:len(token)-1]
		if _, err := strconv.ParseFloat(head, 64); err == nil {
			return head
		}
	}
	return token
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func escape(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
