package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	minLineWidth   = 10
	truncationMark = "..."
)

// formatErrorForDisplay formats an error for the error line.
// The message is word-wrapped to maxWidth (the first line loses the width
// of the "Error: " prefix) and cut to maxErrorLines with "..." at the end.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if message == "" {
		return errorPrefix + "unknown error"
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + message
	}

	otherWidth := max(maxWidth, minLineWidth)
	firstWidth := max(maxWidth-utf8.RuneCountInString(errorPrefix), minLineWidth)

	lines, truncated := wrapWords(words, firstWidth, otherWidth, maxErrorLines)
	if truncated {
		last := []rune(lines[len(lines)-1])
		keep := otherWidth - utf8.RuneCountInString(truncationMark)
		if keep > 0 && len(last) > keep {
			last = last[:keep]
		}
		lines[len(lines)-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}

// wrapWords greedily fills at most maxLines lines. truncated reports
// whether words were left over.
func wrapWords(words []string, firstWidth, otherWidth, maxLines int) (lines []string, truncated bool) {
	var current strings.Builder
	width := firstWidth

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(current.String())

		if currentLen > 0 && currentLen+1+wordLen > width {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) == maxLines {
				return lines, i < len(words)
			}
			width = otherWidth
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines, false
}
