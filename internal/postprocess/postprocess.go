// Package postprocess removes common LLM artifacts from translation output.
//
// It is applied to the raw text returned by the Ollama backend before the
// fragment is spliced back into a JSON or line-oriented file.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean strips reasoning blocks, echoed prompt labels and wrapping quotes
// from text and returns the trimmed result.
func Clean(text string) string {
	text = reasoningBlockRe.ReplaceAllString(text, "")
	text = openReasoningRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	text = stripEchoedLabel(text)
	text = unwrapQuotes(text)
	return strings.TrimSpace(text)
}

// RE2 has no backreferences, so each tag pair is spelled out.
var reasoningBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
)

// openReasoningRe matches a reasoning tag left open because the reply was cut off.
var openReasoningRe = regexp.MustCompile(`(?is)(?:<thinking>|<think>|<reasoning>|<reflection>).*$`)

// echoedLabelRes match a leading "Translation:" style label. A colon is
// required so real dialog starting with "Sure" survives.
var echoedLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.!]?\s+`),
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the)? (?:translated |requested )?(?:translation|text)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:translation|translated text|übersetzung)\s*:`),
}

func stripEchoedLabel(text string) string {
	// The courtesy prefix only counts when a label follows it.
	if loc := echoedLabelRes[0].FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		if echoedLabelRes[1].MatchString(rest) || echoedLabelRes[2].MatchString(rest) {
			text = rest
		}
	}
	for _, re := range echoedLabelRes[1:] {
		if loc := re.FindStringIndex(text); loc != nil {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

var quotePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'«', '»'},
	{'„', '“'},
	{'“', '”'},
	{'‘', '’'},
}

// unwrapQuotes drops one matching pair of outer quotes.
func unwrapQuotes(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	for _, p := range quotePairs {
		if runes[0] == p[0] && runes[n-1] == p[1] {
			return strings.TrimSpace(string(runes[1 : n-1]))
		}
	}
	return text
}

// SingleLine folds text onto one line, joining its non-blank lines with a
// single space. Text without line breaks is returned unchanged.
func SingleLine(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			parts = append(parts, l)
		}
	}
	return strings.Join(parts, " ")
}
