package corpus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"mindcare/internal/domain"
)

// ErrEmptyCorpus indica que la fuente no devolvió ninguna plantilla.
var ErrEmptyCorpus = errors.New("corpus empty")

// Corpus es la colección inmutable de plantillas terapéuticas.
type Corpus struct {
	entries []domain.TemplateEntry
}

// New normaliza las plantillas recibidas y construye el corpus.
func New(entries []domain.TemplateEntry) *Corpus {
	out := make([]domain.TemplateEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, normalizeEntry(e))
	}
	return &Corpus{entries: out}
}

// Empty devuelve un corpus sin plantillas (modo degradado).
func Empty() *Corpus {
	return &Corpus{}
}

// Entries devuelve una copia de las plantillas en el orden original.
func (c *Corpus) Entries() []domain.TemplateEntry {
	if c == nil {
		return nil
	}
	out := make([]domain.TemplateEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len devuelve la cantidad de plantillas.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// UnknownTags lista los topic/technique/tone fuera del vocabulario conocido.
// No es un error: esas plantillas solo pierden los bonus por categoría.
func (c *Corpus) UnknownTags() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(kind, value string) {
		key := kind + "=" + value
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	for _, e := range c.entries {
		if !e.Topic.Known() {
			add("topic", string(e.Topic))
		}
		if !e.Technique.Known() {
			add("technique", string(e.Technique))
		}
		if !e.Tone.Known() {
			add("tone", string(e.Tone))
		}
	}
	return out
}

func normalizeEntry(e domain.TemplateEntry) domain.TemplateEntry {
	e.Topic = domain.Topic(strings.ToLower(strings.TrimSpace(string(e.Topic))))
	e.Technique = domain.Technique(strings.ToLower(strings.TrimSpace(string(e.Technique))))
	e.Tone = domain.Tone(strings.ToLower(strings.TrimSpace(string(e.Tone))))
	keywords := make([]string, 0, len(e.Keywords))
	for _, k := range e.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		keywords = append(keywords, k)
	}
	e.Keywords = keywords
	return e
}

// ParseJSON acepta {"entries": [...]} o un arreglo plano de plantillas.
func ParseJSON(data []byte) ([]domain.TemplateEntry, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, ErrEmptyCorpus
	}
	if strings.HasPrefix(trimmed, "[") {
		var entries []domain.TemplateEntry
		if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, fmt.Errorf("unmarshal corpus array: %w", err)
		}
		return entries, nil
	}
	var doc struct {
		Entries []domain.TemplateEntry `json:"entries"`
	}
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return nil, fmt.Errorf("unmarshal corpus document: %w", err)
	}
	return doc.Entries, nil
}

// Source provee plantillas desde algún origen (archivo, base de datos, integrado).
type Source interface {
	Name() string
	Load(ctx context.Context) ([]domain.TemplateEntry, error)
}

// FileSource lee el corpus desde un archivo JSON.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return "file:" + s.Path }

func (s FileSource) Load(_ context.Context) ([]domain.TemplateEntry, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return ParseJSON(data)
}

// BuiltinSource devuelve el corpus integrado.
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return "builtin" }

func (BuiltinSource) Load(_ context.Context) ([]domain.TemplateEntry, error) {
	return DefaultEntries(), nil
}

// Loader prueba las fuentes en orden y se queda con la primera que devuelva plantillas.
type Loader struct {
	sources []Source
	logger  *zap.Logger
}

func NewLoader(logger *zap.Logger, sources ...Source) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{sources: sources, logger: logger}
}

// Load nunca falla: si ninguna fuente sirve, devuelve un corpus vacío y lo registra.
func (l *Loader) Load(ctx context.Context) *Corpus {
	for _, src := range l.sources {
		if src == nil {
			continue
		}
		entries, err := src.Load(ctx)
		if err == nil && len(entries) == 0 {
			err = ErrEmptyCorpus
		}
		if err != nil {
			l.logger.Warn("corpus source failed", zap.String("source", src.Name()), zap.Error(err))
			continue
		}
		c := New(entries)
		if unknown := c.UnknownTags(); len(unknown) > 0 {
			l.logger.Warn("corpus has unknown tags", zap.Strings("tags", unknown))
		}
		l.logger.Info("corpus loaded", zap.String("source", src.Name()), zap.Int("entries", c.Len()))
		return c
	}
	l.logger.Error("no corpus source available, running with empty corpus")
	return Empty()
}
