package fileproc

import (
	"strings"
)

func translateLines(ft *fragmentTranslator, data string, progress ProgressFunc) (string, error) {
	lines := splitLines(data)
	total := len(lines)

	var b strings.Builder
	b.Grow(len(data))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out, err := ft.translate(trimmed)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
		} else {
			ft.result.Skipped++
		}
		b.WriteByte('\n')

		progress(i+1, total)
	}

	return b.String(), nil
}

// splitLines breaks data into lines without their terminators. A trailing
// newline does not start an extra empty line; an unterminated final line
// is kept.
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	lines := strings.SplitAfter(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		l = strings.TrimSuffix(l, "\n")
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
