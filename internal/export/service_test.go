package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/entity"
)

type fakeJobRepo struct {
	jobs     []*entity.ExtractionJob
	lastFrom *time.Time
	lastTo   *time.Time
}

func (r *fakeJobRepo) Start(context.Context, string, constants.DocumentType, constants.Strategy) (*entity.ExtractionJob, error) {
	panic("not used")
}

func (r *fakeJobRepo) FinishSuccess(context.Context, uuid.UUID, []byte, float64) error {
	panic("not used")
}

func (r *fakeJobRepo) FinishFailure(context.Context, uuid.UUID, string) error {
	panic("not used")
}

func (r *fakeJobRepo) GetByID(context.Context, uuid.UUID) (*entity.ExtractionJob, error) {
	panic("not used")
}

func (r *fakeJobRepo) List(_ context.Context, _ *constants.DocumentType, from, to *time.Time) ([]*entity.ExtractionJob, error) {
	r.lastFrom = from
	r.lastTo = to
	return r.jobs, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleJobs() []*entity.ExtractionJob {
	started := time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC)
	finished := started.Add(2 * time.Second)
	failMsg := "no extractor"
	return []*entity.ExtractionJob{
		{
			ID:           uuid.New(),
			DocumentName: "invoice-001.txt",
			DocumentType: string(constants.DocTypeInvoice),
			Strategy:     string(constants.StrategyRules),
			Status:       string(constants.JobStatusExtractOK),
			ResultJSON:   []byte(`{"document_type":"INVOICE","fields":{"invoice_number":"INV-1","total_amount":1000},"attempted_fields":[],"confidence":0.8}`),
			Confidence:   0.8,
			StartedAt:    started,
			FinishedAt:   &finished,
		},
		{
			ID:           uuid.New(),
			DocumentName: "broken.txt",
			DocumentType: string(constants.DocTypeInvoice),
			Strategy:     string(constants.StrategyRules),
			Status:       string(constants.JobStatusFailed),
			ErrorMessage: &failMsg,
			StartedAt:    started.Add(time.Minute),
		},
	}
}

func TestExportJobsXLSX(t *testing.T) {
	repo := &fakeJobRepo{jobs: sampleJobs()}
	svc := NewService(repo, quietLogger())

	out, err := svc.ExportJobsXLSX(context.Background(), nil, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// fixed headers then the sorted union of field names
	wantHeaders := append(append([]string{}, fixedHeaders...), "invoice_number", "total_amount")
	assert.Equal(t, wantHeaders, rows[0])

	ok := rows[1]
	assert.Equal(t, repo.jobs[0].ID.String(), ok[0])
	assert.Equal(t, "invoice-001.txt", ok[1])
	assert.Equal(t, "INVOICE", ok[2])
	assert.Equal(t, "RULES", ok[3])
	assert.Equal(t, "EXTRACT_OK", ok[4])
	assert.Equal(t, "INV-1", ok[8])
	assert.Equal(t, "1000", ok[9])

	failed := rows[2]
	assert.Equal(t, "broken.txt", failed[1])
	assert.Equal(t, "FAILED", failed[4])
}

func TestExportJobsXLSXEmpty(t *testing.T) {
	svc := NewService(&fakeJobRepo{}, quietLogger())

	out, err := svc.ExportJobsXLSX(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Extractions")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fixedHeaders, rows[0])
}

func TestExportDateWindowNormalization(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := NewService(repo, quietLogger())

	from := time.Date(2023, 1, 15, 14, 30, 0, 0, time.UTC)
	to := time.Date(2023, 1, 20, 9, 0, 0, 0, time.UTC)
	_, err := svc.ExportJobsXLSX(context.Background(), nil, &from, &to)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFrom)
	require.NotNil(t, repo.lastTo)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), *repo.lastFrom)
	assert.Equal(t, time.Date(2023, 1, 20, 23, 59, 59, 0, time.UTC), *repo.lastTo)
}

func TestExportFromOnlyExtendsToToday(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := NewService(repo, quietLogger())

	from := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	_, err := svc.ExportJobsXLSX(context.Background(), nil, &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.lastTo)
	today := time.Now().UTC()
	assert.Equal(t, today.Year(), repo.lastTo.Year())
	assert.Equal(t, today.YearDay(), repo.lastTo.YearDay())
}
