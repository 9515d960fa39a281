package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/common"
	"github.com/jide-lab/fieldlens/internal/entity"
	"github.com/jide-lab/fieldlens/internal/extract"
	"github.com/jide-lab/fieldlens/internal/repository"
)

// Processor coordinates factory selection, document extraction, result
// validation, and job persistence for one document at a time.
type Processor struct {
	logger    *slog.Logger
	factories map[constants.Strategy]extract.Factory
	jobs      repository.ExtractionJobRepository
}

func NewProcessor(
	logger *slog.Logger,
	jobs repository.ExtractionJobRepository,
	rulesFactory extract.Factory,
	modelFactory extract.Factory,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	factories := make(map[constants.Strategy]extract.Factory, 2)
	if rulesFactory != nil {
		factories[constants.StrategyRules] = rulesFactory
	}
	if modelFactory != nil {
		factories[constants.StrategyModel] = modelFactory
	}
	return &Processor{
		logger:    logger,
		factories: factories,
		jobs:      jobs,
	}
}

// Process extracts fields from one document and records the run. The only
// error surfaced before a job exists is factory construction (unsupported
// document type or strategy); extraction itself never raises. Weak fields
// show up as reduced confidence on a successful job.
func (p *Processor) Process(ctx context.Context, doc entity.Document, strategy constants.Strategy) (*entity.ExtractionJob, error) {
	if err := common.NewValidator().
		Field("name", doc.Name, common.Required()).
		Field("text", doc.Text, common.Required()).
		Err(); err != nil {
		return nil, err
	}

	factory, ok := p.factories[strategy]
	if !ok {
		return nil, common.NewAppError("STRATEGY_ERROR",
			fmt.Sprintf("no factory configured for strategy %q", strategy), common.ErrInvalidInput)
	}
	extractor, err := factory.CreateExtractor(doc.Type)
	if err != nil {
		return nil, err
	}

	job, err := p.jobs.Start(ctx, doc.Name, doc.Type, strategy)
	if err != nil {
		return nil, fmt.Errorf("start job: %w", err)
	}

	p.logger.Debug("processor.extract.start",
		"job_id", job.ID, "document", doc.Name,
		"type", doc.Type, "strategy", strategy, "text_bytes", len(doc.Text),
	)

	result := extractor.Extract(ctx, doc.Text)

	raw, err := json.Marshal(result)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return job, fmt.Errorf("marshal result: %w", err)
	}
	if err := extract.ValidateResultJSON(raw); err != nil {
		_ = p.jobs.FinishFailure(ctx, job.ID, err.Error())
		return job, fmt.Errorf("validate result: %w", err)
	}
	if err := p.jobs.FinishSuccess(ctx, job.ID, raw, result.Confidence); err != nil {
		return job, fmt.Errorf("finish job: %w", err)
	}

	job.Status = string(constants.JobStatusExtractOK)
	job.ResultJSON = raw
	job.Confidence = result.Confidence

	p.logger.Info("processor.extract.ok",
		"job_id", job.ID, "document", doc.Name,
		"fields_extracted", len(result.Fields),
		"fields_attempted", len(result.AttemptedFields),
		"confidence", result.Confidence,
	)
	return job, nil
}
