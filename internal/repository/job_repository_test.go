package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
)

func newJob(total int) *domain.ImportJob {
	job := domain.NewImportJob(uuid.New().String(), "tenant-1", "actor-1", domain.ImportKindStudents,
		"roster.csv", total, domain.ImportOptions{SkipDuplicates: true}, time.Now().UTC())
	job.Context = map[string]any{"source": "test"}
	return job
}

func failures(n, startRow int) []domain.JobError {
	out := make([]domain.JobError, n)
	for i := range out {
		out[i] = domain.JobError{
			Row:      startRow + i,
			Field:    "email",
			Message:  "duplicate",
			Snapshot: map[string]string{"email": fmt.Sprintf("s%d@example.com", startRow+i)},
		}
	}
	return out
}

func TestPostgresJobRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresJobRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get job", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := newJob(100)
		require.NoError(t, repo.CreateJob(ctx, job))

		retrieved, err := repo.GetJob(ctx, job.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)

		assert.Equal(t, job.ID, retrieved.ID)
		assert.Equal(t, domain.JobStatusPending, retrieved.Status)
		assert.Equal(t, 100, retrieved.TotalRecords)
		assert.Equal(t, domain.ImportOptions{BatchSize: domain.DefaultBatchSize, SkipDuplicates: true}, retrieved.Options)
		assert.Equal(t, "test", retrieved.Context["source"])
		assert.Nil(t, retrieved.StartedAt)
	})

	t.Run("get non-existent job returns nil", func(t *testing.T) {
		retrieved, err := repo.GetJob(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("lifecycle to completed", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := newJob(3)
		require.NoError(t, repo.CreateJob(ctx, job))

		started, err := repo.MarkProcessing(ctx, job.ID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusProcessing, started.Status)
		assert.Equal(t, 1, started.Attempts)
		require.NotNil(t, started.StartedAt)

		// a redelivery keeps the original start time
		again, err := repo.MarkProcessing(ctx, job.ID, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 2, again.Attempts)
		assert.True(t, started.StartedAt.Equal(*again.StartedAt))

		_, err = repo.CompleteJob(ctx, job.ID, time.Now())
		assert.True(t, errors.Is(err, domain.ErrInvalidTransition), "cannot complete before all records are processed")

		updated, err := repo.ApplyBatch(ctx, job.ID, domain.BatchDelta{
			Processed: 3, Successful: 2, Failed: 1, Errors: failures(1, 2),
		}, 500, time.Now())
		require.NoError(t, err)
		assert.Equal(t, 3, updated.ProcessedRecords)
		assert.NoError(t, updated.CheckInvariants())

		completed, err := repo.CompleteJob(ctx, job.ID, time.Now())
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusCompleted, completed.Status)
		assert.NotNil(t, completed.CompletedAt)

		_, err = repo.MarkProcessing(ctx, job.ID, time.Now())
		assert.True(t, errors.Is(err, domain.ErrJobTerminal))

		jobErrors, err := repo.ListJobErrors(ctx, job.ID, 100)
		require.NoError(t, err)
		require.Len(t, jobErrors, 1)
		assert.Equal(t, 2, jobErrors[0].Row)
		assert.Equal(t, "s2@example.com", jobErrors[0].Snapshot["email"])
	})

	t.Run("apply batch caps stored errors", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := newJob(10)
		require.NoError(t, repo.CreateJob(ctx, job))
		_, err := repo.MarkProcessing(ctx, job.ID, time.Now())
		require.NoError(t, err)

		_, err = repo.ApplyBatch(ctx, job.ID, domain.BatchDelta{Processed: 5, Failed: 5, Errors: failures(5, 1)}, 3, time.Now())
		require.NoError(t, err)
		updated, err := repo.ApplyBatch(ctx, job.ID, domain.BatchDelta{Processed: 5, Failed: 5, Errors: failures(5, 6)}, 3, time.Now())
		require.NoError(t, err)

		assert.Equal(t, 10, updated.FailedCount)
		assert.True(t, updated.ErrorsTruncated)

		jobErrors, err := repo.ListJobErrors(ctx, job.ID, 100)
		require.NoError(t, err)
		require.Len(t, jobErrors, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{jobErrors[0].Row, jobErrors[1].Row, jobErrors[2].Row})
	})

	t.Run("apply batch rejects overflow and non-running jobs", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := newJob(2)
		require.NoError(t, repo.CreateJob(ctx, job))

		_, err := repo.ApplyBatch(ctx, job.ID, domain.BatchDelta{Processed: 1, Successful: 1}, 10, time.Now())
		assert.True(t, errors.Is(err, domain.ErrInvalidTransition))

		_, err = repo.MarkProcessing(ctx, job.ID, time.Now())
		require.NoError(t, err)
		_, err = repo.ApplyBatch(ctx, job.ID, domain.BatchDelta{Processed: 3, Successful: 3}, 10, time.Now())
		assert.Error(t, err)

		_, err = repo.ApplyBatch(ctx, uuid.New().String(), domain.BatchDelta{Processed: 1}, 10, time.Now())
		assert.True(t, errors.Is(err, domain.ErrJobNotFound))
	})

	t.Run("concurrent batches stay additive", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := newJob(200)
		require.NoError(t, repo.CreateJob(ctx, job))
		_, err := repo.MarkProcessing(ctx, job.ID, time.Now())
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.ApplyBatch(ctx, job.ID, domain.BatchDelta{Processed: 10, Successful: 9, Failed: 1, Errors: failures(1, 0)}, 500, time.Now())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		retrieved, err := repo.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, 200, retrieved.ProcessedRecords)
		assert.Equal(t, 180, retrieved.SuccessfulCount)
		assert.Equal(t, 20, retrieved.FailedCount)

		jobErrors, err := repo.ListJobErrors(ctx, job.ID, 500)
		require.NoError(t, err)
		assert.Len(t, jobErrors, 20)
	})

	t.Run("fail job records a job-level error", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := newJob(5)
		require.NoError(t, repo.CreateJob(ctx, job))
		_, err := repo.MarkProcessing(ctx, job.ID, time.Now())
		require.NoError(t, err)

		failed, err := repo.FailJob(ctx, job.ID, "database unreachable", time.Now())
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusFailed, failed.Status)
		assert.NotNil(t, failed.CompletedAt)

		jobErrors, err := repo.ListJobErrors(ctx, job.ID, 10)
		require.NoError(t, err)
		require.Len(t, jobErrors, 1)
		assert.Equal(t, 0, jobErrors[0].Row)
		assert.Equal(t, "database unreachable", jobErrors[0].Message)

		_, err = repo.FailJob(ctx, job.ID, "again", time.Now())
		assert.True(t, errors.Is(err, domain.ErrJobTerminal))
	})

	t.Run("request cancel", func(t *testing.T) {
		testDB.TruncateTables(t, "import_jobs")

		job := newJob(5)
		require.NoError(t, repo.CreateJob(ctx, job))
		require.NoError(t, repo.RequestCancel(ctx, job.ID, time.Now()))

		retrieved, err := repo.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.True(t, retrieved.CancelRequested)

		_, err = repo.FailJob(ctx, job.ID, "cancelled", time.Now())
		require.NoError(t, err)
		err = repo.RequestCancel(ctx, job.ID, time.Now())
		assert.True(t, errors.Is(err, domain.ErrJobTerminal))

		err = repo.RequestCancel(ctx, uuid.New().String(), time.Now())
		assert.True(t, errors.Is(err, domain.ErrJobNotFound))
	})
}
