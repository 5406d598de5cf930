package scanner

// lineCursor is the single forward position over the configuration lines.
// The idle dispatcher and the block routines all pull from the same cursor,
// so a line consumed inside a block is gone when the dispatcher resumes.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(lines []string) *lineCursor {
	return &lineCursor{lines: lines}
}

// Next returns the next unconsumed line. ok is false once the input is
// exhausted.
func (c *lineCursor) Next() (line string, ok bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line = c.lines[c.pos]
	c.pos++
	return line, true
}
