// Package params handles parameter sweeps: splitting user-supplied value
// lists, expanding numeric ranges, and substituting placeholders into
// command lines.
package params

import (
	"fmt"
	"strings"
)

// Tokenize splits a comma-delimited value list into its values.
//
// A backslash escapes a following comma or backslash, so literal commas
// and backslashes can appear inside a value. A backslash followed by any
// other character (or by the end of the input) is passed through
// verbatim. The result always contains count(unescaped commas)+1 tokens,
// so the empty string tokenizes to a single empty value.
func Tokenize(input string) []string {
	tokens := []string{}
	var buf strings.Builder

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '\\':
			if i+1 < len(runes) && (runes[i+1] == ',' || runes[i+1] == '\\') {
				buf.WriteRune(runes[i+1])
				i++
			} else {
				buf.WriteRune('\\')
			}
		case ',':
			tokens = append(tokens, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(c)
		}
	}

	tokens = append(tokens, buf.String())
	return tokens
}

// ExpandRange returns the values min..max (inclusive) in increments of
// step, rendered as decimal strings for command-line substitution.
func ExpandRange(min, max, step int) ([]string, error) {
	if step < 1 {
		return nil, fmt.Errorf("step must be at least 1, got %d", step)
	}
	if max < min {
		return nil, fmt.Errorf("empty parameter range: %d..%d", min, max)
	}

	var values []string
	for v := min; v <= max; v += step {
		values = append(values, fmt.Sprintf("%d", v))
	}
	return values, nil
}

// Substitute replaces every {name} placeholder in command with value.
func Substitute(command, name, value string) string {
	return strings.ReplaceAll(command, "{"+name+"}", value)
}
