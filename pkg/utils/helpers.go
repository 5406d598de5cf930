package utils

import (
	"strings"
)

// SplitLines splits raw configuration text into lines without their
// terminators. A single trailing newline does not produce an empty final
// line; CRLF and bare CR endings are treated like LF.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Field returns the nth whitespace-delimited field of a line, or "" when
// the line has fewer fields
func Field(line string, n int) string {
	fields := strings.Fields(line)
	if n < 0 || n >= len(fields) {
		return ""
	}
	return fields[n]
}

// LastField returns the final whitespace-delimited field of a line, or ""
// for a blank line
func LastField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// Center pads s with spaces on both sides up to width. Uneven padding puts
// the extra space on the right.
func Center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Banner renders a fixed-width banner: a line of asterisks, the centered
// title, and a closing line of asterisks
func Banner(title string, width int) string {
	edge := strings.Repeat("*", width)
	return edge + "\n" + Center(title, width) + "\n" + edge + "\n"
}

// Contains checks if a string slice contains a specific string
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsFold checks if a string slice contains a specific string,
// ignoring case
func ContainsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}
