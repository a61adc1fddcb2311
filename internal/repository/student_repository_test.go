package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
)

func newStudent(school School, email, admission string) *domain.Student {
	now := time.Now().UTC()
	return &domain.Student{
		ID:              uuid.New().String(),
		TenantID:        school.TenantID,
		ClassID:         school.ClassID,
		FirstName:       "Ada",
		LastName:        "Obi",
		Email:           email,
		Gender:          domain.GenderFemale,
		DateOfBirth:     time.Date(2012, 4, 19, 0, 0, 0, 0, time.UTC),
		AdmissionNumber: admission,
		CreatedBy:       "actor-1",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestPostgresStudentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresStudentRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and find by either natural key", func(t *testing.T) {
		school := testDB.SeedSchool(t, "JSS 1A")
		s := newStudent(school, "Ada@Example.com", "ADM-1")
		require.NoError(t, repo.Create(ctx, s))

		byEmail, err := repo.FindByNaturalKey(ctx, school.TenantID, "ada@example.com", "")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, s.ID, byEmail.ID)
		assert.Equal(t, "ada@example.com", byEmail.Email)

		byAdmission, err := repo.FindByNaturalKey(ctx, school.TenantID, "", "ADM-1")
		require.NoError(t, err)
		require.NotNil(t, byAdmission)
		assert.Equal(t, s.ID, byAdmission.ID)

		other, err := repo.FindByNaturalKey(ctx, "another-tenant", "ada@example.com", "ADM-1")
		require.NoError(t, err)
		assert.Nil(t, other)

		none, err := repo.FindByNaturalKey(ctx, school.TenantID, "", "")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("create maps unique violations to duplicate", func(t *testing.T) {
		school := testDB.SeedSchool(t, "JSS 1A")
		require.NoError(t, repo.Create(ctx, newStudent(school, "dup@example.com", "")))

		err := repo.Create(ctx, newStudent(school, "DUP@example.com", ""))
		assert.True(t, errors.Is(err, domain.ErrDuplicate))

		// same email in another tenant is fine
		otherSchool := testDB.SeedSchool(t, "JSS 1A")
		assert.NoError(t, repo.Create(ctx, newStudent(otherSchool, "dup@example.com", "")))
	})

	t.Run("students without natural keys never collide", func(t *testing.T) {
		school := testDB.SeedSchool(t, "JSS 1A")
		require.NoError(t, repo.Create(ctx, newStudent(school, "", "")))
		require.NoError(t, repo.Create(ctx, newStudent(school, "", "")))

		students, err := repo.ListByClass(ctx, school.TenantID, school.ClassID)
		require.NoError(t, err)
		assert.Len(t, students, 2)
	})

	t.Run("find or create under concurrency persists one student", func(t *testing.T) {
		school := testDB.SeedSchool(t, "JSS 1A")

		var wg sync.WaitGroup
		var mu sync.Mutex
		created := 0
		ids := map[string]bool{}
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s := newStudent(school, "race@example.com", "ADM-RACE")
				ok, err := repo.FindOrCreate(ctx, s)
				assert.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				if ok {
					created++
				}
				ids[s.ID] = true
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, created)
		assert.Len(t, ids, 1)

		students, err := repo.ListByClass(ctx, school.TenantID, school.ClassID)
		require.NoError(t, err)
		assert.Len(t, students, 1)
	})

	t.Run("update in place", func(t *testing.T) {
		school := testDB.SeedSchool(t, "JSS 1A")
		s := newStudent(school, "upd@example.com", "ADM-U")
		require.NoError(t, repo.Create(ctx, s))

		s.Phone = "+2348031234567"
		s.LastName = "Okafor"
		s.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, s))

		got, err := repo.FindByNaturalKey(ctx, school.TenantID, "upd@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, "Okafor", got.LastName)
		assert.Equal(t, "+2348031234567", got.Phone)

		missing := newStudent(school, "ghost@example.com", "")
		assert.True(t, errors.Is(repo.Update(ctx, missing), domain.ErrNotFound))
	})
}
