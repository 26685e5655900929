// Package placeholder shields game-script markup from the translation
// backend. SRPG Studio control codes (\C[1], \V[3]), Ren'Py text tags
// ({b}, {w=0.5}), Ren'Py interpolations ([player]) and printf verbs (%s,
// %(name)s) are swapped for numbered markers ([PH0], [PH1], …) before the
// call and put back afterwards.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// markupRes are applied in order; earlier patterns win.
var markupRes = []*regexp.Regexp{
	// SRPG Studio control codes, with or without an argument
	regexp.MustCompile(`\\[A-Za-z]+(?:\[[^\]]*\])?`),
	// Ren'Py text tags, opening and closing
	regexp.MustCompile(`\{[^{}]+\}`),
	// Ren'Py interpolation
	regexp.MustCompile(`\[[^\[\]]+\]`),
	// printf-style verbs, named or positional
	regexp.MustCompile(`%(?:\([A-Za-z_]\w*\))?[-+#0]*\d*(?:\.\d+)?[sdifxr]`),
}

// markerRe tolerates the spaces some backends insert inside brackets.
var markerRe = regexp.MustCompile(`\[\s*PH\s*(\d+)\s*\]`)

// Protect replaces markup in text with [PHn] markers and returns the
// originals for Restore. Markers are numbered pattern by pattern, so n does
// not follow position in the text.
func Protect(text string) (string, []string) {
	var markers []string

	replace := func(match string) string {
		markers = append(markers, match)
		return fmt.Sprintf("[PH%d]", len(markers)-1)
	}

	for _, re := range markupRes {
		// Markers from earlier passes look like interpolations; skip them.
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			if markerRe.MatchString(match) && len(markerRe.FindString(match)) == len(match) {
				return match
			}
			return replace(match)
		})
	}

	return text, markers
}

// Restore puts the originals captured by Protect back in place of their
// markers. Unknown indices are left as they are.
func Restore(text string, markers []string) string {
	return markerRe.ReplaceAllStringFunc(text, func(match string) string {
		idx, ok := markerIndex(match)
		if !ok || idx >= len(markers) {
			return match
		}
		return markers[idx]
	})
}

// Missing returns the indices of markers absent from text.
func Missing(text string, markers []string) []int {
	seen := make(map[int]bool, len(markers))
	for _, m := range markerRe.FindAllString(text, -1) {
		if idx, ok := markerIndex(m); ok {
			seen[idx] = true
		}
	}

	var missing []int
	for i := range markers {
		if !seen[i] {
			missing = append(missing, i)
		}
	}
	return missing
}

// OnlyMarkup reports whether protected text has nothing left to translate.
func OnlyMarkup(protected string) bool {
	return strings.TrimSpace(markerRe.ReplaceAllString(protected, "")) == ""
}

func markerIndex(marker string) (int, bool) {
	sub := markerRe.FindStringSubmatch(marker)
	if len(sub) < 2 {
		return 0, false
	}
	idx, err := strconv.Atoi(sub[1])
	if err != nil {
		return 0, false
	}
	return idx, true
}
