package async

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jide-lab/fieldlens/constants"
	"github.com/jide-lab/fieldlens/internal/entity"
)

type countingProcessor struct {
	mu   sync.Mutex
	docs []string
}

func (p *countingProcessor) Process(_ context.Context, doc entity.Document, _ constants.Strategy) (*entity.ExtractionJob, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs = append(p.docs, doc.Name)
	return &entity.ExtractionJob{DocumentName: doc.Name}, nil
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.docs)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewQueue(proc, quietLogger(), WithWorkers(3), WithQueueSize(8))

	const n = 20
	for i := 0; i < n; i++ {
		err := q.Enqueue(context.Background(), Job{
			Doc: entity.Document{
				Name: fmt.Sprintf("doc-%02d.txt", i),
				Type: constants.DocTypeInvoice,
				Text: "text",
			},
			Strategy:    constants.StrategyRules,
			SubmittedAt: time.Now(),
		})
		require.NoError(t, err)
	}
	q.Shutdown(context.Background())

	assert.Equal(t, n, proc.count())
}

func TestQueueShutdownIsIdempotent(t *testing.T) {
	q := NewQueue(&countingProcessor{}, quietLogger(), WithWorkers(1))

	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}

func TestQueueRejectsAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewQueue(proc, quietLogger(), WithWorkers(1))
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), Job{
		Doc:      entity.Document{Name: "late.txt", Type: constants.DocTypeInvoice, Text: "text"},
		Strategy: constants.StrategyRules,
	})
	require.NoError(t, err)
	assert.Zero(t, proc.count())
}
