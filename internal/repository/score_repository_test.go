package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/repository"
)

func newScore(school School, studentID, assessment string, value float64) *domain.Score {
	now := time.Now().UTC()
	return &domain.Score{
		ID:         uuid.New().String(),
		TenantID:   school.TenantID,
		StudentID:  studentID,
		ClassID:    school.ClassID,
		SubjectID:  school.SubjectID,
		TermID:     school.TermID,
		Assessment: assessment,
		Score:      value,
		MaxScore:   20,
		RecordedBy: "teacher-1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPostgresScoreRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	students := repository.NewPostgresStudentRepository(testDB.Pool)
	repo := repository.NewPostgresScoreRepository(testDB.Pool)
	ctx := context.Background()

	school := testDB.SeedSchool(t, "JSS 2B")
	student := newStudent(school, "scorer@example.com", "ADM-S")
	require.NoError(t, students.Create(ctx, student))

	t.Run("create, find and list", func(t *testing.T) {
		s := newScore(school, student.ID, "CA1", 17.5)
		require.NoError(t, repo.Create(ctx, s))

		got, err := repo.FindByNaturalKey(ctx, school.TenantID, student.ID, school.SubjectID, school.TermID, "CA1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 17.5, got.Score)

		list, err := repo.ListByClass(ctx, school.TenantID, school.ClassID, school.SubjectID, school.TermID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		err = repo.Create(ctx, newScore(school, student.ID, "CA1", 10))
		assert.True(t, errors.Is(err, domain.ErrDuplicate))
	})

	t.Run("find or create returns the existing score", func(t *testing.T) {
		first := newScore(school, student.ID, "CA2", 12)
		created, err := repo.FindOrCreate(ctx, first)
		require.NoError(t, err)
		assert.True(t, created)

		second := newScore(school, student.ID, "CA2", 19)
		created, err = repo.FindOrCreate(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)

		got, err := repo.FindByNaturalKey(ctx, school.TenantID, student.ID, school.SubjectID, school.TermID, "CA2")
		require.NoError(t, err)
		assert.Equal(t, 12.0, got.Score)
	})

	t.Run("update in place", func(t *testing.T) {
		s := newScore(school, student.ID, "Exam", 40)
		require.NoError(t, repo.Create(ctx, s))

		s.Score = 55
		s.UpdatedAt = time.Now().UTC()
		require.NoError(t, repo.Update(ctx, s))

		got, err := repo.FindByNaturalKey(ctx, school.TenantID, student.ID, school.SubjectID, school.TermID, "Exam")
		require.NoError(t, err)
		assert.Equal(t, 55.0, got.Score)
	})

	t.Run("unknown student is reported as not found", func(t *testing.T) {
		err := repo.Create(ctx, newScore(school, uuid.New().String(), "CA1", 1))
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestPostgresResolverRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	students := repository.NewPostgresStudentRepository(testDB.Pool)
	repo := repository.NewPostgresResolverRepository(testDB.Pool)
	ctx := context.Background()

	school := testDB.SeedSchool(t, "JSS 1A")
	testDB.AddClass(t, school.TenantID, "JSS 1B")
	testDB.AddClass(t, school.TenantID, "jss 1b ")

	t.Run("classes by name", func(t *testing.T) {
		classes, err := repo.FindClassesByName(ctx, school.TenantID, " jss 1a")
		require.NoError(t, err)
		require.Len(t, classes, 1)
		assert.Equal(t, school.ClassID, classes[0].ID)

		ambiguous, err := repo.FindClassesByName(ctx, school.TenantID, "JSS 1B")
		require.NoError(t, err)
		assert.Len(t, ambiguous, 2)

		none, err := repo.FindClassesByName(ctx, "another-tenant", "JSS 1A")
		require.NoError(t, err)
		assert.Empty(t, none)

		names, err := repo.ListClassNames(ctx, school.TenantID)
		require.NoError(t, err)
		assert.Contains(t, names, "JSS 1A")
	})

	t.Run("lookups by id", func(t *testing.T) {
		class, err := repo.GetClass(ctx, school.TenantID, school.ClassID)
		require.NoError(t, err)
		require.NotNil(t, class)

		subject, err := repo.GetSubject(ctx, school.TenantID, school.SubjectID)
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", subject.Name)

		term, err := repo.GetTerm(ctx, school.TenantID, school.TermID)
		require.NoError(t, err)
		assert.Equal(t, "First Term", term.Name)

		missing, err := repo.GetSubject(ctx, school.TenantID, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, missing)

		malformed, err := repo.GetTerm(ctx, school.TenantID, "not-a-uuid")
		require.NoError(t, err)
		assert.Nil(t, malformed)

		otherTenant, err := repo.GetClass(ctx, "another-tenant", school.ClassID)
		require.NoError(t, err)
		assert.Nil(t, otherTenant)
	})

	t.Run("student in class", func(t *testing.T) {
		s := newStudent(school, "member@example.com", "")
		require.NoError(t, students.Create(ctx, s))

		ok, err := repo.StudentInClass(ctx, school.TenantID, school.ClassID, s.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.StudentInClass(ctx, school.TenantID, school.ClassID, uuid.New().String())
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.StudentInClass(ctx, school.TenantID, school.ClassID, "abc")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
