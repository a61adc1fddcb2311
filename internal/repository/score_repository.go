package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

const scoreColumns = `id, tenant_id, student_id, class_id, subject_id, term_id, assessment,
	score, max_score, recorded_by, created_at, updated_at`

// PostgresScoreRepository implements ScoreRepository using PostgreSQL.
type PostgresScoreRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresScoreRepository creates a new PostgresScoreRepository.
func NewPostgresScoreRepository(pool *pgxpool.Pool) *PostgresScoreRepository {
	return &PostgresScoreRepository{pool: pool}
}

// FindByNaturalKey returns the score for a student/subject/term/assessment, or nil.
func (r *PostgresScoreRepository) FindByNaturalKey(ctx context.Context, tenantID, studentID, subjectID, termID, assessment string) (*domain.Score, error) {
	s, err := scanScore(r.pool.QueryRow(ctx, `
		SELECT `+scoreColumns+`
		FROM scores
		WHERE tenant_id = $1 AND student_id = $2 AND subject_id = $3 AND term_id = $4 AND assessment = $5
	`, tenantID, studentID, subjectID, termID, assessment))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("find score", err)
	}
	return s, nil
}

// Create inserts a score. A natural key collision returns domain.ErrDuplicate.
func (r *PostgresScoreRepository) Create(ctx context.Context, s *domain.Score) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO scores (`+scoreColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, scoreArgs(s)...)
	return mapError("insert score", err)
}

// FindOrCreate inserts s unless the natural key is taken, in which case s.ID
// is set to the existing score and created is false.
func (r *PostgresScoreRepository) FindOrCreate(ctx context.Context, s *domain.Score) (bool, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO scores (`+scoreColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT ON CONSTRAINT uq_scores_natural_key DO NOTHING
		RETURNING id
	`, scoreArgs(s)...).Scan(&id)
	if err == nil {
		s.ID = id
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, mapError("find or create score", err)
	}

	existing, err := r.FindByNaturalKey(ctx, s.TenantID, s.StudentID, s.SubjectID, s.TermID, s.Assessment)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, mapError("find or create score", domain.ErrDuplicate)
	}
	s.ID = existing.ID
	return false, nil
}

// Update overwrites the value of an existing score.
func (r *PostgresScoreRepository) Update(ctx context.Context, s *domain.Score) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE scores
		SET score = $3, max_score = $4, recorded_by = $5, class_id = $6, updated_at = $7
		WHERE id = $1 AND tenant_id = $2
	`, s.ID, s.TenantID, s.Score, s.MaxScore, nullable(s.RecordedBy), s.ClassID, s.UpdatedAt)
	if err != nil {
		return mapError("update score", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError("update score", domain.ErrNotFound)
	}
	return nil
}

// ListByClass returns the scores recorded for a class, subject and term.
func (r *PostgresScoreRepository) ListByClass(ctx context.Context, tenantID, classID, subjectID, termID string) ([]domain.Score, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+scoreColumns+`
		FROM scores
		WHERE tenant_id = $1 AND class_id = $2 AND subject_id = $3 AND term_id = $4
		ORDER BY student_id, assessment
	`, tenantID, classID, subjectID, termID)
	if err != nil {
		return nil, mapError("list scores", err)
	}
	defer rows.Close()

	scores := make([]domain.Score, 0)
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, mapError("scan score", err)
		}
		scores = append(scores, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list scores", err)
	}
	return scores, nil
}

func scoreArgs(s *domain.Score) []any {
	return []any{
		s.ID, s.TenantID, s.StudentID, s.ClassID, s.SubjectID, s.TermID, s.Assessment,
		s.Score, s.MaxScore, nullable(s.RecordedBy), s.CreatedAt, s.UpdatedAt,
	}
}

func scanScore(row pgx.Row) (*domain.Score, error) {
	var s domain.Score
	var recordedBy *string
	err := row.Scan(&s.ID, &s.TenantID, &s.StudentID, &s.ClassID, &s.SubjectID, &s.TermID, &s.Assessment,
		&s.Score, &s.MaxScore, &recordedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.RecordedBy = deref(recordedBy)
	return &s, nil
}
