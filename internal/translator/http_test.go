package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMyMemoryService_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.URL.Query().Get("q"); got != "Hello world" {
			t.Errorf("expected q='Hello world', got %q", got)
		}
		if got := r.URL.Query().Get("langpair"); got != "en|de" {
			t.Errorf("expected langpair 'en|de', got %q", got)
		}
		if got := r.URL.Query().Get("de"); got != "me@example.com" {
			t.Errorf("expected email param, got %q", got)
		}
		resp := map[string]interface{}{
			"responseData":   map[string]interface{}{"translatedText": "Hallo Welt", "match": 0.95},
			"responseStatus": 200,
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := &MyMemoryService{
		email:   "me@example.com",
		baseURL: server.URL,
		client:  server.Client(),
	}

	result, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "Hello world",
		SourceLang: "en",
		TargetLang: "de",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Hallo Welt" {
		t.Errorf("expected 'Hallo Welt', got %q", result.TranslatedText)
	}
	if result.Confidence != 0.95 {
		t.Errorf("expected confidence 0.95, got %v", result.Confidence)
	}
}

func TestMyMemoryService_Translate_AutoSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("langpair"); got != "autodetect|de" {
			t.Errorf("expected langpair 'autodetect|de', got %q", got)
		}
		resp := map[string]interface{}{
			"responseData":   map[string]interface{}{"translatedText": "Hallo", "match": 1},
			"responseStatus": 200,
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := &MyMemoryService{baseURL: server.URL, client: server.Client()}

	if _, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", SourceLang: "auto", TargetLang: "de"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMyMemoryService_Translate_QuotaError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"responseData":    map[string]interface{}{"translatedText": ""},
			"responseStatus":  429,
			"responseDetails": "MYMEMORY WARNING: YOU USED ALL AVAILABLE FREE TRANSLATIONS FOR TODAY",
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := &MyMemoryService{baseURL: server.URL, client: server.Client()}

	result, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "de"})
	if err == nil {
		t.Error("expected error for quota response")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if !strings.Contains(result.Error, "429") {
		t.Errorf("expected status in error message, got %q", result.Error)
	}
}

func TestMyMemoryService_Translate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := &MyMemoryService{baseURL: server.URL, client: server.Client()}

	if _, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "de"}); err == nil {
		t.Error("expected error for non-OK status")
	}
}

func TestMyMemoryService_Name(t *testing.T) {
	svc := NewMyMemoryService("")

	if svc.Name() != "mymemory" {
		t.Errorf("expected 'mymemory', got %q", svc.Name())
	}
}

func TestOllamaTranslator_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if req["model"] != "llama3.2" {
			t.Errorf("expected model llama3.2, got %v", req["model"])
		}
		resp := map[string]interface{}{
			"response": "Here is the translation: \"Hallo\"",
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := &OllamaTranslator{
		baseURL: server.URL,
		model:   "llama3.2",
		client:  server.Client(),
	}

	result, err := svc.Translate(context.Background(), TranslateRequest{
		Text:       "Hello",
		SourceLang: "en",
		TargetLang: "de",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Hallo" {
		t.Errorf("expected 'Hallo', got %q", result.TranslatedText)
	}
	if result.Metadata["model"] != "llama3.2" {
		t.Errorf("expected model in metadata, got %v", result.Metadata)
	}
}

func TestOllamaTranslator_Translate_FoldsMultilineReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"response": "Guten\nMorgen"})
	}))
	defer server.Close()

	svc := &OllamaTranslator{baseURL: server.URL, model: "llama3.2", client: server.Client()}

	result, err := svc.Translate(context.Background(), TranslateRequest{Text: "Good morning", SourceLang: "auto", TargetLang: "de"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Guten Morgen" {
		t.Errorf("expected 'Guten Morgen', got %q", result.TranslatedText)
	}
}

func TestOllamaTranslator_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := &OllamaTranslator{baseURL: server.URL, model: "llama3.2", client: server.Client()}

	result, err := svc.Translate(context.Background(), TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "de"})
	if err == nil {
		t.Error("expected error for non-OK status")
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
}

func TestOllamaTranslator_IsAvailable_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := &OllamaTranslator{baseURL: server.URL, client: server.Client()}

	if err := svc.IsAvailable(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOllamaTranslator_IsAvailable_NotRunning(t *testing.T) {
	svc := &OllamaTranslator{
		baseURL: "http://localhost:19999",
		client:  &http.Client{Timeout: 100 * time.Millisecond},
	}

	if err := svc.IsAvailable(context.Background()); err == nil {
		t.Error("expected error when Ollama not available")
	}
}

func TestNewOllamaTranslator_Defaults(t *testing.T) {
	svc := NewOllamaTranslator("", "")

	if svc.baseURL != DefaultOllamaURL {
		t.Errorf("expected default URL, got %q", svc.baseURL)
	}
	if svc.Model() != DefaultOllamaModel {
		t.Errorf("expected default model, got %q", svc.Model())
	}
}
