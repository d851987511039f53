package validator

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// matcher is a compiled full-string pattern.
type matcher interface {
	MatchString(s string) bool
}

// linear compiles a pattern for Go's RE2 engine. Patterns must carry their own ^...$ anchors;
// without (?m), $ only matches at the end of the text.
func linear(pattern string) matcher {
	return regexp.MustCompile(pattern)
}

// lookaround wraps a backtracking regexp2 pattern for rules that need lookahead assertions.
type lookaround struct {
	re *regexp2.Regexp
}

// backtracking compiles a pattern that uses lookaround. Patterns must be anchored with ^...\z
// because regexp2's $ also matches before a trailing newline.
// No MatchTimeout is set, so the result never depends on timing. Lookaround patterns must
// stay free of nested quantifiers.
func backtracking(pattern string) matcher {
	return &lookaround{re: regexp2.MustCompile(pattern, regexp2.None)}
}

// MatchString reports a full match.
func (l *lookaround) MatchString(s string) bool {
	// regexp2 only returns an error when MatchTimeout expires
	ok, _ := l.re.MatchString(s)
	return ok
}
