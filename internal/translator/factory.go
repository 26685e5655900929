package translator

import (
	"fmt"
	"strings"
)

// Names lists the backends New can build, default first.
func Names() []string {
	return []string{"gtranslate", "google", "mymemory", "ollama"}
}

// New builds the backend called name.
func New(name string, opts Options) (TranslationService, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "gtranslate":
		return NewGTranslateService(), nil
	case "google":
		return NewGoogleService(opts.Credentials, opts.APIKey), nil
	case "mymemory":
		svc := NewMyMemoryService(opts.Email)
		if opts.BaseURL != "" {
			svc.baseURL = opts.BaseURL
		}
		if opts.Timeout > 0 {
			svc.client.Timeout = opts.Timeout
		}
		return svc, nil
	case "ollama":
		svc := NewOllamaTranslator(opts.BaseURL, opts.Model)
		if opts.Timeout > 0 {
			svc.client.Timeout = opts.Timeout
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unknown service %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}
