package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "Dune", []string{"Dune"}},
		{"multiple", "Dune\nArrival", []string{"Dune", "Arrival"}},
		{"trims whitespace", "  Dune  \n\tArrival", []string{"Dune", "Arrival"}},
		{"skips blank lines", "Dune\n\n\nArrival\n", []string{"Dune", "Arrival"}},
		{"windows line endings", "Dune\r\nArrival", []string{"Dune", "Arrival"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitLines(tc.input))
		})
	}
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "", JoinLines(nil))
	assert.Equal(t, "Dune\nArrival", JoinLines([]string{"Dune", "Arrival"}))
}

func TestSplitJoinRoundTrip(t *testing.T) {
	lines := []string{"Timothee Chalamet", "Rebecca Ferguson"}
	assert.Equal(t, lines, SplitLines(JoinLines(lines)))
}
