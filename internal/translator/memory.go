package translator

import (
	"context"
	"time"
)

// Memory is a translation memory keyed by source text and language pair.
type Memory interface {
	GetCachedTranslation(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error)
	SaveToMemory(ctx context.Context, sourceText, sourceLang, targetLang, finalText, serviceUsed string) error
}

type memoryService struct {
	TranslationService
	mem Memory
}

// WithMemory returns svc backed by mem: cached fragments are answered without
// calling svc, and every successful non-empty translation is stored. Memory
// errors never fail a translation.
func WithMemory(svc TranslationService, mem Memory) TranslationService {
	return &memoryService{TranslationService: svc, mem: mem}
}

func (s *memoryService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	start := time.Now()
	if cached, found, err := s.mem.GetCachedTranslation(ctx, req.Text, req.SourceLang, req.TargetLang); err == nil && found {
		return &ServiceResult{
			ServiceName:    s.Name(),
			TranslatedText: cached,
			Confidence:     1.0,
			Metadata:       map[string]string{"cache": "hit"},
			Latency:        time.Since(start),
		}, nil
	}

	result, err := s.TranslationService.Translate(ctx, req)
	if err != nil || result == nil || result.Error != "" || result.TranslatedText == "" {
		return result, err
	}

	_ = s.mem.SaveToMemory(ctx, req.Text, req.SourceLang, req.TargetLang, result.TranslatedText, result.ServiceName)
	return result, nil
}

// Close closes the wrapped service when it holds resources.
func (s *memoryService) Close() error {
	if c, ok := s.TranslationService.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
