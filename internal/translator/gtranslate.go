package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/bregydoc/gtranslate"
)

// GTranslateService calls the keyless Google Translate web endpoint. It
// needs no credentials and accepts "auto" as the source language.
type GTranslateService struct {
	translate func(text string, params gtranslate.TranslationParams) (string, error)
}

func NewGTranslateService() *GTranslateService {
	return &GTranslateService{translate: gtranslate.TranslateWithParams}
}

func (s *GTranslateService) Name() string {
	return "gtranslate"
}

func (s *GTranslateService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result, err
	}

	from := req.SourceLang
	if isAuto(from) {
		from = "auto"
	}

	// One try per call; the web client otherwise retries on its own.
	translated, err := s.translate(req.Text, gtranslate.TranslationParams{
		From:  from,
		To:    req.TargetLang,
		Tries: 1,
	})
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("Google Translate: %w", err)
	}

	result.TranslatedText = translated
	result.Confidence = 1.0

	return result, nil
}

func (s *GTranslateService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GTranslateService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{
		"af", "ar", "bg", "bn", "ca", "cs", "da", "de", "el", "en",
		"es", "et", "fa", "fi", "fr", "he", "hi", "hr", "hu", "id",
		"it", "ja", "ko", "lt", "lv", "ms", "nl", "no", "pl", "pt",
		"ro", "ru", "sk", "sl", "sr", "sv", "th", "tr", "uk", "vi",
		"zh-CN", "zh-TW",
	}, nil
}
