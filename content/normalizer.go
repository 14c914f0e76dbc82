// Package content normalizes and validates the bulleted "why you'll love
// it" copy of a recipe. All functions are pure; persistence never depends
// on their diagnostics.
package content

import (
	"fmt"
	"strings"
	"unicode"
)

// Coerce flattens the loosely-typed input the authoring layer produces
// (string, slice of strings, or anything else) into a single string.
// Slices join with newlines; other values are stringified.
func Coerce(input interface{}) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case []interface{}:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// FixBulletFormatting rewrites loosely formatted text into the canonical
// bullet form: every line starts with "• " and carries a bold lead-in.
// Already-correct input is returned unchanged, so the function is
// idempotent. Empty or whitespace-only input yields "".
func FixBulletFormatting(input interface{}) string {
	raw := Coerce(input)
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	lines := splitContentLines(raw)
	if !needsFix(lines) {
		return raw
	}

	var out []string
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if isEmphasisOnly(line) && i+1 < len(lines) && !strings.Contains(lines[i+1], "**") {
			// A bold label split from its description across two lines.
			out = append(out, "• "+line+" – "+capitalize(lines[i+1]))
			i++
			continue
		}
		if strings.Contains(line, "**") {
			out = append(out, "• "+line)
			continue
		}
		// No emphasis to work with; bullet it without fabricating bold.
		out = append(out, "• "+capitalize(line))
	}
	return strings.Join(out, "\n")
}

// ValidateAndFix is the pipeline entry point: normalize, then report any
// defects still present in the result.
func ValidateAndFix(input interface{}) (string, []string) {
	fixed := FixBulletFormatting(input)
	return fixed, ValidateBulletFormatting(fixed)
}

// splitContentLines returns the non-blank lines with any leading bullet
// marker ("•" or "-") stripped.
func splitContentLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, stripBullet(line))
	}
	return lines
}

func stripBullet(line string) string {
	for _, marker := range []string{"•", "-"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimLeft(strings.TrimPrefix(line, marker), " \t")
		}
	}
	return line
}

// needsFix reports whether any line lacks a bold pair or opens its bold
// with a non-uppercase rune.
func needsFix(lines []string) bool {
	for _, line := range lines {
		if strings.Count(line, "**") < 2 {
			return true
		}
		after := line[strings.Index(line, "**")+2:]
		r := firstRune(after)
		if !unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// isEmphasisOnly reports whether the whole line is a single **...** pair
// with no trailing text.
func isEmphasisOnly(line string) bool {
	if !strings.HasPrefix(line, "**") || !strings.HasSuffix(line, "**") || len(line) < 5 {
		return false
	}
	inner := line[2 : len(line)-2]
	return inner != "" && !strings.Contains(inner, "**")
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
