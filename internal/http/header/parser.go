package header

import "strings"

// Parse reads "Name: value" lines from block until the first empty line.
// Lines may end in CRLF or LF. Lines without a colon are skipped.
func Parse(block string) *Headers {
	h := New()
	setRemainingHeaders(block, h)
	return h
}

func setRemainingHeaders(remaining string, h *Headers) {
	for len(remaining) > 0 {
		lineEnd := strings.IndexByte(remaining, '\n')
		line := remaining
		if lineEnd != -1 {
			line = remaining[:lineEnd]
		}
		line = strings.TrimSuffix(line, "\r")

		if len(line) == 0 {
			break
		}

		if colonIdx := strings.IndexByte(line, ':'); colonIdx != -1 {
			key := line[:colonIdx]
			value := strings.TrimPrefix(line[colonIdx+1:], " ")
			h.Add(key, value)
		}

		if lineEnd == -1 {
			break
		}
		remaining = remaining[lineEnd+1:]
	}
}
