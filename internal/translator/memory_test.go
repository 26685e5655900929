package translator

import (
	"context"
	"errors"
	"testing"
)

type countingService struct {
	calls int
	text  string
	err   error
}

func (c *countingService) Name() string { return "counting" }

func (c *countingService) Translate(ctx context.Context, req TranslateRequest) (*ServiceResult, error) {
	c.calls++
	if c.err != nil {
		return &ServiceResult{ServiceName: c.Name(), Error: c.err.Error()}, c.err
	}
	return &ServiceResult{ServiceName: c.Name(), TranslatedText: c.text}, nil
}

func (c *countingService) IsAvailable(ctx context.Context) error { return nil }

func (c *countingService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "de"}, nil
}

type mapMemory struct {
	entries map[string]string
	saves   int
}

func (m *mapMemory) GetCachedTranslation(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error) {
	v, ok := m.entries[sourceText+"|"+sourceLang+"|"+targetLang]
	return v, ok, nil
}

func (m *mapMemory) SaveToMemory(ctx context.Context, sourceText, sourceLang, targetLang, finalText, serviceUsed string) error {
	m.saves++
	m.entries[sourceText+"|"+sourceLang+"|"+targetLang] = finalText
	return nil
}

func TestWithMemory_SecondRequestServedFromMemory(t *testing.T) {
	next := &countingService{text: "Hallo"}
	mem := &mapMemory{entries: map[string]string{}}
	svc := WithMemory(next, mem)

	req := TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "de"}

	for i := 0; i < 2; i++ {
		result, err := svc.Translate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TranslatedText != "Hallo" {
			t.Errorf("expected 'Hallo', got %q", result.TranslatedText)
		}
	}

	if next.calls != 1 {
		t.Errorf("expected 1 service call, got %d", next.calls)
	}
	if mem.saves != 1 {
		t.Errorf("expected 1 save, got %d", mem.saves)
	}
	if svc.Name() != "counting" {
		t.Errorf("expected wrapped name, got %q", svc.Name())
	}
}

func TestWithMemory_FailureNotStored(t *testing.T) {
	next := &countingService{err: errors.New("quota exceeded")}
	mem := &mapMemory{entries: map[string]string{}}
	svc := WithMemory(next, mem)

	if _, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "de"}); err == nil {
		t.Error("expected error")
	}
	if mem.saves != 0 {
		t.Errorf("expected no saves, got %d", mem.saves)
	}
}

func TestWithMemory_EmptyResultNotStored(t *testing.T) {
	next := &countingService{text: ""}
	mem := &mapMemory{entries: map[string]string{}}
	svc := WithMemory(next, mem)

	if _, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "de"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mem.saves != 0 {
		t.Errorf("expected no saves, got %d", mem.saves)
	}
}

func TestNew_KnownServices(t *testing.T) {
	for _, name := range Names() {
		svc, err := New(name, Options{})
		if err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
			continue
		}
		if svc.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, svc.Name())
		}
	}
}

func TestNew_DefaultIsGTranslate(t *testing.T) {
	svc, err := New("", Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Name() != "gtranslate" {
		t.Errorf("expected gtranslate, got %q", svc.Name())
	}
}

func TestNew_Unknown(t *testing.T) {
	if _, err := New("deepl", Options{}); err == nil {
		t.Error("expected error for unknown service")
	}
}
