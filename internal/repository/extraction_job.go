package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/common"
	"github.com/jide-lab/fieldlens/internal/entity"
)

// ExtractionJobRepository persists extraction runs.
type ExtractionJobRepository interface {
	Start(ctx context.Context, docName string, docType constants.DocumentType, strategy constants.Strategy) (*entity.ExtractionJob, error)
	FinishSuccess(ctx context.Context, id uuid.UUID, resultJSON []byte, confidence float64) error
	FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionJob, error)
	List(ctx context.Context, docType *constants.DocumentType, from, to *time.Time) ([]*entity.ExtractionJob, error)
}

type jobRepository struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

// NewExtractionJobRepository builds the SQL-backed job repository. driver is
// "sqlite" or "postgres" and only affects placeholder style.
func NewExtractionJobRepository(db *sql.DB, driver string, logger *slog.Logger) ExtractionJobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &jobRepository{db: db, driver: driver, logger: logger}
}

func (r *jobRepository) Start(ctx context.Context, docName string, docType constants.DocumentType, strategy constants.Strategy) (*entity.ExtractionJob, error) {
	job := &entity.ExtractionJob{
		ID:           uuid.New(),
		DocumentName: docName,
		DocumentType: string(docType),
		Strategy:     string(strategy),
		Status:       string(constants.JobStatusRunning),
		StartedAt:    time.Now().UTC(),
	}
	q := rebind(r.driver, `
		INSERT INTO extraction_job (id, document_name, document_type, strategy, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	_, err := r.db.ExecContext(ctx, q,
		job.ID.String(), job.DocumentName, job.DocumentType, job.Strategy,
		job.Status, job.StartedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, common.WrapError(err, "start extraction job")
	}
	r.logger.Debug("job started", "job_id", job.ID, "document", docName, "strategy", strategy)
	return job, nil
}

func (r *jobRepository) FinishSuccess(ctx context.Context, id uuid.UUID, resultJSON []byte, confidence float64) error {
	q := rebind(r.driver, `
		UPDATE extraction_job
		SET status = ?, result_json = ?, confidence = ?, finished_at = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		string(constants.JobStatusExtractOK), string(resultJSON), confidence,
		time.Now().UTC().Format(time.RFC3339Nano), id.String())
	return common.WrapError(err, "finish extraction job")
}

func (r *jobRepository) FinishFailure(ctx context.Context, id uuid.UUID, errMsg string) error {
	q := rebind(r.driver, `
		UPDATE extraction_job
		SET status = ?, error_message = ?, finished_at = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		string(constants.JobStatusFailed), errMsg,
		time.Now().UTC().Format(time.RFC3339Nano), id.String())
	return common.WrapError(err, "fail extraction job")
}

const jobColumns = `id, document_name, document_type, strategy, status, result_json, confidence, error_message, started_at, finished_at`

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionJob, error) {
	q := rebind(r.driver, `SELECT `+jobColumns+` FROM extraction_job WHERE id = ?`)
	row := r.db.QueryRowContext(ctx, q, id.String())
	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: job %s", common.ErrNotFound, id)
	}
	return job, err
}

func (r *jobRepository) List(ctx context.Context, docType *constants.DocumentType, from, to *time.Time) ([]*entity.ExtractionJob, error) {
	q := `SELECT ` + jobColumns + ` FROM extraction_job WHERE 1=1`
	var args []any
	if docType != nil {
		q += ` AND document_type = ?`
		args = append(args, string(*docType))
	}
	if from != nil {
		q += ` AND started_at >= ?`
		args = append(args, from.UTC().Format(time.RFC3339Nano))
	}
	if to != nil {
		q += ` AND started_at <= ?`
		args = append(args, to.UTC().Format(time.RFC3339Nano))
	}
	q += ` ORDER BY started_at ASC`

	rows, err := r.db.QueryContext(ctx, rebind(r.driver, q), args...)
	if err != nil {
		return nil, common.WrapError(err, "list extraction jobs")
	}
	defer rows.Close()

	var jobs []*entity.ExtractionJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*entity.ExtractionJob, error) {
	var (
		job        entity.ExtractionJob
		idStr      string
		resultJSON sql.NullString
		errMsg     sql.NullString
		startedAt  string
		finishedAt sql.NullString
	)
	err := row.Scan(&idStr, &job.DocumentName, &job.DocumentType, &job.Strategy,
		&job.Status, &resultJSON, &job.Confidence, &errMsg, &startedAt, &finishedAt)
	if err != nil {
		return nil, err
	}

	job.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, common.WrapError(err, "parse job id")
	}
	if resultJSON.Valid {
		job.ResultJSON = []byte(resultJSON.String)
	}
	if errMsg.Valid {
		msg := errMsg.String
		job.ErrorMessage = &msg
	}
	job.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, common.WrapError(err, "parse started_at")
	}
	if finishedAt.Valid {
		t, err := time.Parse(time.RFC3339Nano, finishedAt.String)
		if err != nil {
			return nil, common.WrapError(err, "parse finished_at")
		}
		job.FinishedAt = &t
	}
	return &job, nil
}
