// Package fileproc translates the text payload of JSON, Ren'Py (.rpy) and
// plain text files while keeping their structure. Each supported extension
// maps to one strategy: JSON files have every double-quoted run translated,
// line files have every non-blank line translated. The result is written
// next to the input as <stem>_translated<ext>.
package fileproc

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/drakomut/srpgtran/internal/translator"
)

// OutputSuffix is inserted between the file stem and its extension.
const OutputSuffix = "_translated"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ProgressFunc receives the number of finished units and the total after
// each unit of work.
type ProgressFunc func(done, total int)

// Job describes a single file translation.
type Job struct {
	Path       string
	SourceLang string
	TargetLang string

	// SkipJSONKeys leaves quoted runs followed by a colon untranslated.
	// Off by default: keys are translated like any other string.
	SkipJSONKeys bool

	// ProtectMarkup hides SRPG Studio control codes, Ren'Py tags and
	// interpolations, and printf verbs from the service.
	ProtectMarkup bool

	Progress ProgressFunc
}

// Result summarises a finished job.
type Result struct {
	OutputPath string
	Translated int
	Skipped    int

	// MarkupFallbacks counts fragments kept in the original because the
	// translation dropped protected markup.
	MarkupFallbacks int
}

type strategy int

const (
	strategyJSON strategy = iota
	strategyLines
)

var strategies = map[string]strategy{
	".json": strategyJSON,
	".rpy":  strategyLines,
	".txt":  strategyLines,
}

// SupportedExtensions lists the extensions Process accepts.
func SupportedExtensions() []string {
	return []string{".json", ".rpy", ".txt"}
}

// OutputPath returns the sibling path the translation of path is written to.
// Only the final extension is considered: a/b.c.json → a/b.c_translated.json.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + OutputSuffix + ext
}

// Process translates the file named by job.Path with svc and writes the
// result to OutputPath(job.Path). Nothing is written when any fragment fails.
func Process(ctx context.Context, svc translator.TranslationService, job Job) (*Result, error) {
	ext := filepath.Ext(job.Path)
	strat, ok := strategies[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w %q: only %s files are supported",
			ErrUnsupportedType, ext, strings.Join(SupportedExtensions(), ", "))
	}

	raw, err := os.ReadFile(job.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s: %w", job.Path, ErrInvalidEncoding)
	}

	hasBOM := bytes.HasPrefix(raw, utf8BOM)
	if hasBOM {
		raw = raw[len(utf8BOM):]
	}

	progress := job.Progress
	if progress == nil {
		progress = func(int, int) {}
	}

	result := &Result{OutputPath: OutputPath(job.Path)}
	ft := &fragmentTranslator{
		ctx:        ctx,
		svc:        svc,
		sourceLang: job.SourceLang,
		targetLang: job.TargetLang,
		protect:    job.ProtectMarkup,
		result:     result,
	}

	var out string
	switch strat {
	case strategyJSON:
		out, err = translateJSON(ft, string(raw), job.SkipJSONKeys, progress)
	case strategyLines:
		out, err = translateLines(ft, string(raw), progress)
	}
	if err != nil {
		return nil, err
	}

	data := []byte(out)
	if hasBOM {
		data = append(append([]byte{}, utf8BOM...), data...)
	}

	if err := writeFileAtomic(result.OutputPath, data); err != nil {
		return nil, err
	}
	return result, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place.
func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move output file into place: %w", err)
	}
	return nil
}
