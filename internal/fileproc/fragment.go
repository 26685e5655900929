package fileproc

import (
	"context"
	"errors"
	"strings"

	"github.com/drakomut/srpgtran/internal/placeholder"
	"github.com/drakomut/srpgtran/internal/translator"
)

// fragmentTranslator issues exactly one service call per non-empty fragment
// and keeps the per-job counters.
type fragmentTranslator struct {
	ctx        context.Context
	svc        translator.TranslationService
	sourceLang string
	targetLang string
	protect    bool
	result     *Result
}

// translate returns whitespace-only text unchanged without calling the
// service. An empty service result falls back to the original text, as does
// a result that lost protected markup.
func (f *fragmentTranslator) translate(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		f.result.Skipped++
		return text, nil
	}

	send := text
	var markers []string
	if f.protect {
		send, markers = placeholder.Protect(text)
		if placeholder.OnlyMarkup(send) {
			f.result.Skipped++
			return text, nil
		}
	}

	if err := f.ctx.Err(); err != nil {
		return "", &TranslationError{Fragment: text, Cause: err}
	}

	res, err := f.svc.Translate(f.ctx, translator.TranslateRequest{
		Text:       send,
		SourceLang: f.sourceLang,
		TargetLang: f.targetLang,
	})
	if err == nil && res != nil && res.Error != "" {
		err = errors.New(res.Error)
	}
	if err != nil {
		return "", &TranslationError{Fragment: text, Cause: err}
	}

	f.result.Translated++
	if res == nil || res.TranslatedText == "" {
		return text, nil
	}

	out := res.TranslatedText
	if len(markers) > 0 {
		if len(placeholder.Missing(out, markers)) > 0 {
			f.result.MarkupFallbacks++
			return text, nil
		}
		out = placeholder.Restore(out, markers)
	}
	return out, nil
}
