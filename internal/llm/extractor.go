package llm

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jide-lab/fieldlens/internal/extract"
)

// FieldExtractor extracts one field by asking a QA model one or more
// candidate questions and keeping the answer with the highest score.
type FieldExtractor struct {
	field       string
	questions   []string
	modelName   string
	resolver    Resolver
	postprocess extract.PostprocessFunc
	logger      *slog.Logger

	resolveOnce sync.Once
	model       Model
	resolveErr  error
}

// Option configures a FieldExtractor.
type Option func(*FieldExtractor)

// WithPostprocess converts the winning answer into a typed value. A failing
// postprocess marks the field as missed; the raw score is never adjusted.
func WithPostprocess(fn extract.PostprocessFunc) Option {
	return func(e *FieldExtractor) { e.postprocess = fn }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *FieldExtractor) { e.logger = logger }
}

// NewFieldExtractor builds a model-backed extractor for one field. Questions
// are in priority order: on a score tie the earliest question wins.
func NewFieldExtractor(field string, questions []string, modelName string, resolver Resolver, opts ...Option) *FieldExtractor {
	if modelName == "" {
		modelName = DefaultModelName
	}
	e := &FieldExtractor{
		field:     field,
		questions: questions,
		modelName: modelName,
		resolver:  resolver,
		logger:    slog.Default(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *FieldExtractor) FieldName() string {
	return e.field
}

// ModelName reports which model this extractor asks. Factories use it to
// verify shared configuration threading.
func (e *FieldExtractor) ModelName() string {
	return e.modelName
}

// resolve resolves the model handle once and reuses it for every call.
func (e *FieldExtractor) resolve() (Model, error) {
	e.resolveOnce.Do(func() {
		e.model, e.resolveErr = e.resolver.Resolve(e.modelName)
	})
	return e.model, e.resolveErr
}

// ExtractField asks every candidate question and returns the best-scoring
// answer. A failing question is skipped; only when every question fails does
// the field miss. Model failures never propagate to the caller.
func (e *FieldExtractor) ExtractField(ctx context.Context, text string) extract.FieldOutcome {
	model, err := e.resolve()
	if err != nil {
		e.logger.Warn("qa.resolve.failed", "field", e.field, "model", e.modelName, "error", err)
		return extract.Miss()
	}

	var (
		best    Answer
		haveAns bool
	)
	for _, q := range e.questions {
		ans, err := model.Ask(ctx, q, text)
		if err != nil {
			e.logger.Warn("qa.ask.failed", "field", e.field, "model", e.modelName, "question", q, "error", err)
			continue
		}
		// strict > keeps the earliest question on ties
		if !haveAns || ans.Score > best.Score {
			best = ans
			haveAns = true
		}
	}
	if !haveAns || best.Answer == "" {
		return extract.Miss()
	}

	if e.postprocess == nil {
		return extract.Hit(best.Answer, best.Score)
	}
	value, err := e.postprocess(best.Answer)
	if err != nil {
		e.logger.Warn("qa.postprocess.failed", "field", e.field, "answer", best.Answer, "error", err)
		return extract.Miss()
	}
	return extract.Hit(value, best.Score)
}

var _ extract.FieldExtractor = (*FieldExtractor)(nil)
