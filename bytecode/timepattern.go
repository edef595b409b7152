package bytecode

import (
	"fmt"
	"strings"

	"github.com/lumascript/lumavm/errz"
)

// TimePattern matches wall-clock times against one or more "hh:mm"
// patterns. Any digit of a pattern may be replaced by '*', so "1*:*5"
// matches 10:05 through 19:55 at minutes ending in 5.
type TimePattern struct {
	patterns []string
}

// ParseTimePattern compiles a single "hh:mm" pattern.
func ParseTimePattern(text string) (*TimePattern, error) {
	if len(text) != 5 || text[2] != ':' {
		return nil, errz.Errorf(errz.InvalidPattern, "time pattern %q: expected hh:mm", text)
	}
	for i, c := range text {
		if i == 2 {
			continue
		}
		if c != '*' && (c < '0' || c > '9') {
			return nil, errz.Errorf(errz.InvalidPattern, "time pattern %q: bad character %q", text, c)
		}
	}
	if h := text[0]; h != '*' && h > '2' {
		return nil, errz.Errorf(errz.InvalidPattern, "time pattern %q: hour out of range", text)
	}
	if m := text[3]; m != '*' && m > '5' {
		return nil, errz.Errorf(errz.InvalidPattern, "time pattern %q: minute out of range", text)
	}
	return &TimePattern{patterns: []string{text}}, nil
}

// MustParseTimePattern is like ParseTimePattern but panics on error.
func MustParseTimePattern(text string) *TimePattern {
	p, err := ParseTimePattern(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Union returns a pattern matching any time either p or other matches.
func (p *TimePattern) Union(other *TimePattern) *TimePattern {
	merged := make([]string, 0, len(p.patterns)+len(other.patterns))
	merged = append(merged, p.patterns...)
	for _, o := range other.patterns {
		if !p.has(o) {
			merged = append(merged, o)
		}
	}
	return &TimePattern{patterns: merged}
}

func (p *TimePattern) has(pattern string) bool {
	for _, existing := range p.patterns {
		if existing == pattern {
			return true
		}
	}
	return false
}

// Match reports whether the given hour and minute satisfy the pattern.
func (p *TimePattern) Match(hour, minute int) bool {
	t := fmt.Sprintf("%02d:%02d", hour, minute)
	for _, pattern := range p.patterns {
		if matchOne(pattern, t) {
			return true
		}
	}
	return false
}

func matchOne(pattern, t string) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '*' && pattern[i] != t[i] {
			return false
		}
	}
	return true
}

// String returns the canonical form of the pattern. A union is rendered
// as its members joined by " or ".
func (p *TimePattern) String() string {
	return strings.Join(p.patterns, " or ")
}
