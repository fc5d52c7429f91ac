package quiz_net

import "strings"

// SplitLines cuts one received chunk into protocol lines.
// Every piece is trimmed and empty pieces are dropped. A trailing piece
// without its newline is returned as-is, it is not held back.
func SplitLines(chunk string) []string {
	pieces := strings.Split(chunk, "\n")
	lines := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		line := strings.TrimSpace(piece)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

// LineAssembler is the buffered alternative to SplitLines: a line is only
// emitted once its newline has arrived, even if it spans several chunks.
type LineAssembler struct {
	partial strings.Builder
}

func (a *LineAssembler) Feed(chunk string) []string {
	a.partial.WriteString(chunk)
	buffered := a.partial.String()

	cut := strings.LastIndexByte(buffered, '\n')
	if cut < 0 {
		return nil
	}

	a.partial.Reset()
	a.partial.WriteString(buffered[cut+1:])

	return SplitLines(buffered[:cut])
}

// Pending returns the bytes still waiting for a terminator.
func (a *LineAssembler) Pending() string {
	return a.partial.String()
}
