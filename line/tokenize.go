package line

import "strings"

// Line terminators.
const (
	CRLF = "\r\n"
	LF   = "\n"
)

// Tokenize splits text into lines and classifies each of them. A "\r"
// directly before "\n" belongs to the terminator. Text ending in a
// terminator produces no trailing empty line.
func Tokenize(text string, syn Syntax) []Line {
	var lines []Line
	num := 0
	for len(text) > 0 {
		num++
		var content, eol string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			content, text = text[:i], text[i+1:]
			eol = LF
			if strings.HasSuffix(content, "\r") {
				content = content[:len(content)-1]
				eol = CRLF
			}
		} else {
			content, text = text, ""
		}

		l := Classify(content, syn)
		l.Num = num
		l.EOL = eol
		lines = append(lines, l)
	}
	return lines
}
