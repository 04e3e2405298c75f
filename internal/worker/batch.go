package worker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/evenodd"
	"github.com/ppiankov/evenodd/internal/cache"
	"github.com/ppiankov/evenodd/internal/coerce"
	"github.com/ppiankov/evenodd/internal/model"
)

// Classifier defines the interface for classifying one input
type Classifier interface {
	Classify(input any, want evenodd.Kind, opts ...evenodd.Option) (evenodd.Result, error)
}

// Input is one non-empty line of a batch file
type Input struct {
	Line int
	Text string
}

// BatchProcessor classifies a list of inputs in order, memoising verdicts
type BatchProcessor struct {
	classifier Classifier
	cache      cache.Cache
	ttl        time.Duration
	raw        bool
}

// NewBatchProcessor creates a new batch processor. A nil store disables caching.
func NewBatchProcessor(classifier Classifier, store cache.Cache, ttl time.Duration) *BatchProcessor {
	if store == nil {
		store = cache.Nop{}
	}
	return &BatchProcessor{
		classifier: classifier,
		cache:      store,
		ttl:        ttl,
	}
}

// SetRaw passes each line to the classifier as a string instead of parsing
// it as a numeric literal first.
func (b *BatchProcessor) SetRaw(raw bool) {
	b.raw = raw
}

// Process classifies every input and returns the run report. It stops early
// only if ctx is cancelled.
func (b *BatchProcessor) Process(ctx context.Context, inputs []Input, want evenodd.Kind, opts model.Options) (*model.Report, error) {
	report := &model.Report{
		RunID:     uuid.NewString(),
		Kind:      want.String(),
		StartedAt: time.Now().UTC(),
		Options:   opts,
		Entries:   make([]model.Entry, 0, len(inputs)),
	}

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("batch interrupted at line %d: %w", in.Line, err)
		}

		entry := b.classifyOne(in, want, opts)
		report.Entries = append(report.Entries, entry)
		tally(&report.Totals, entry)
	}

	return report, nil
}

// ProcessFile reads inputs from a file and classifies them
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string, want evenodd.Kind, opts model.Options) (*model.Report, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	report, err := b.Process(ctx, inputs, want, opts)
	if report != nil {
		report.Source = filePath
	}
	return report, err
}

func (b *BatchProcessor) classifyOne(in Input, want evenodd.Kind, opts model.Options) model.Entry {
	mode := want.String()
	if b.raw {
		mode += "+raw"
	}
	key := cache.Key(in.Text, mode, opts)

	// Debug runs log one line per value, so every value reaches the classifier.
	store := b.cache
	if opts.EnableDebug {
		store = cache.Nop{}
	}
	if cached, ok := store.Get(key); ok {
		cached.Line = in.Line
		cached.Cached = true
		return cached
	}

	var input any = in.Text
	if !b.raw {
		input = coerce.ParseLiteral(in.Text)
	}

	entry := model.Entry{Line: in.Line, Input: in.Text}
	result, err := b.classifier.Classify(input, want, evenodd.WithOptions(opts))

	var verr *evenodd.ValidationError
	switch {
	case errors.As(err, &verr):
		entry.Status = model.StatusError
		entry.Gate = verr.Gate.String()
		entry.Error = err.Error()
	case err != nil:
		entry.Status = model.StatusError
		entry.Error = err.Error()
	case result.Failed != 0:
		entry.Status = model.StatusRejected
		entry.Gate = result.Failed.String()
	default:
		entry.Status = model.StatusClassified
		entry.Result = result.Value
		entry.Path = string(result.Path)
	}

	store.Set(key, entry, b.ttl)
	return entry
}

func tally(t *model.Totals, e model.Entry) {
	t.Inputs++
	if e.Cached {
		t.CacheHits++
	}
	switch e.Status {
	case model.StatusClassified:
		if e.Result {
			t.Matched++
		} else {
			t.Unmatched++
		}
	case model.StatusRejected:
		t.Rejected++
	case model.StatusError:
		t.Errored++
	}
}

// ReadInputsFromFile reads inputs from a file (one per line)
func ReadInputsFromFile(filePath string) ([]Input, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadInputs(file)
}

// ReadInputs reads one input per line, skipping blank lines and # comments.
// Duplicates are kept; they are answered from the cache.
func ReadInputs(r io.Reader) ([]Input, error) {
	var inputs []Input

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inputs = append(inputs, Input{Line: lineNo, Text: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return inputs, nil
}
