package helper

import "strings"

// SplitLines turns a textarea value into one string per non-empty line,
// trimming surrounding whitespace.
func SplitLines(value string) []string {
	out := []string{}
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinLines is the inverse of SplitLines, used to prefill textarea fields.
func JoinLines(values []string) string {
	return strings.Join(values, "\n")
}
