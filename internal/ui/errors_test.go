package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		width    int
		expected string
	}{
		{name: "nil", err: nil, width: 80, expected: ""},
		{name: "short", err: errors.New("backend down"), width: 80, expected: "Error: backend down"},
		{name: "empty message", err: errors.New(""), width: 80, expected: "Error: unknown error"},
		{name: "wraps to second line", err: errors.New("alpha beta gamma delta"), width: 20, expected: "Error: alpha beta\ngamma delta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatErrorForDisplay(tt.err, tt.width))
		})
	}
}

func TestFormatErrorForDisplay_TruncatesLongMessages(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 60))

	got := formatErrorForDisplay(err, 30)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[1], "..."))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 30)
	}
}
