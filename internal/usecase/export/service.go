package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/eslsoft/vocdrill/internal/repository"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const defaultBatchSize = 512

var errNilWriter = errors.New("export: writer is required")

// ProgressReporter receives callbacks while a vocabulary is written out.
type ProgressReporter interface {
	Start(name string, total int)
	Increment(name string, delta int)
	Finish(name string)
}

type noopProgress struct{}

func (noopProgress) Start(string, int)     {}
func (noopProgress) Increment(string, int) {}
func (noopProgress) Finish(string)         {}

// Service writes vocabularies as CSV with a `word,meaning` header.
type Service struct {
	vocabularies repository.VocabularyRepository
	words        repository.WordRepository
	batchSize    int
}

type Option func(*Service)

// WithBatchSize controls how many rows are written between flushes and progress callbacks.
func WithBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

// NewService constructs an export service.
func NewService(vocabularies repository.VocabularyRepository, words repository.WordRepository, opts ...Option) *Service {
	svc := &Service{
		vocabularies: vocabularies,
		words:        words,
		batchSize:    defaultBatchSize,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	reporter ProgressReporter
	withBOM  bool
}

// WithProgressReporter registers a reporter that receives progress callbacks during export.
func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) {
		cfg.reporter = reporter
	}
}

// WithoutBOM omits the UTF-8 byte-order mark.
func WithoutBOM() ExportOption {
	return func(cfg *exportConfig) {
		cfg.withBOM = false
	}
}

// Export writes one row per word of the vocabulary, senses joined with "; ". It returns
// the number of data rows written.
func (s *Service) Export(ctx context.Context, vocabularyID int64, w io.Writer, opts ...ExportOption) (written int, err error) {
	if w == nil {
		return 0, errNilWriter
	}
	cfg := exportConfig{reporter: noopProgress{}, withBOM: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.reporter == nil {
		cfg.reporter = noopProgress{}
	}

	vocab, err := s.vocabularies.GetByID(ctx, vocabularyID)
	if err != nil {
		return 0, err
	}
	entries, err := s.words.ListEntries(ctx, repository.ListWordQuery{VocabularyID: vocabularyID})
	if err != nil {
		return 0, err
	}

	out := w
	if cfg.withBOM {
		bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
		defer func() {
			if cerr := bw.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("flush encoder: %w", cerr)
			}
		}()
		out = bw
	}

	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"word", "meaning"}); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	cfg.reporter.Start(vocab.Name, len(entries))
	pending := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := cw.Write([]string{entry.Word, entry.MeaningText()}); err != nil {
			return written, fmt.Errorf("write row %q: %w", entry.Word, err)
		}
		written++
		pending++
		if pending >= s.batchSize {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return written, fmt.Errorf("flush rows: %w", err)
			}
			cfg.reporter.Increment(vocab.Name, pending)
			pending = 0
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return written, fmt.Errorf("flush rows: %w", err)
	}
	if pending > 0 {
		cfg.reporter.Increment(vocab.Name, pending)
	}
	cfg.reporter.Finish(vocab.Name)

	return written, nil
}
