package fileproc

import (
	"regexp"
	"strings"
	"unicode"
)

// quotedString matches every double-quoted run on a single line, keys
// included. Escaped quotes inside a value end the match early.
var quotedString = regexp.MustCompile(`"(.*?)"`)

func translateJSON(ft *fragmentTranslator, data string, skipKeys bool, progress ProgressFunc) (string, error) {
	matches := quotedString.FindAllStringSubmatchIndex(data, -1)
	total := len(matches)
	if total == 0 {
		progress(0, 0)
		return data, nil
	}

	var b strings.Builder
	b.Grow(len(data))

	last := 0
	for i, m := range matches {
		b.WriteString(data[last:m[0]])

		if skipKeys && isObjectKey(data, m[1]) {
			b.WriteString(data[m[0]:m[1]])
		} else {
			out, err := ft.translate(data[m[2]:m[3]])
			if err != nil {
				return "", err
			}
			b.WriteByte('"')
			b.WriteString(out)
			b.WriteByte('"')
		}

		last = m[1]
		progress(i+1, total)
	}
	b.WriteString(data[last:])

	return b.String(), nil
}

// isObjectKey reports whether the first non-space rune at or after end is a colon.
func isObjectKey(data string, end int) bool {
	rest := strings.TrimLeftFunc(data[end:], unicode.IsSpace)
	return strings.HasPrefix(rest, ":")
}

