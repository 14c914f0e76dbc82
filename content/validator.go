package content

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateBulletFormatting inspects bullet-formatted text and reports
// formatting defects as human-readable strings. Line numbers are 1-indexed
// over non-blank lines. A single line can yield several issues. The input
// is never mutated and the function never panics; an empty result means
// the text is clean.
func ValidateBulletFormatting(text string) []string {
	issues := []string{}
	if strings.TrimSpace(text) == "" {
		return issues
	}

	n := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n++
		line = stripBullet(line)

		markers := strings.Count(line, "**")
		if markers == 0 {
			issues = append(issues, fmt.Sprintf("Line %d: Missing **bold** markers", n))
		}
		if r := firstRune(strings.TrimLeft(line, "*")); unicode.IsLower(r) {
			issues = append(issues, fmt.Sprintf("Line %d: Starts with lowercase", n))
		}
		if markers == 1 {
			issues = append(issues, fmt.Sprintf("Line %d: Unclosed bold marker", n))
		}
	}
	return issues
}
