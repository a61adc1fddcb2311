package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

const studentColumns = `id, tenant_id, class_id, first_name, middle_name, last_name, email, gender,
	date_of_birth, admission_number, phone, guardian_name, guardian_phone, guardian_email, address,
	created_by, created_at, updated_at`

// PostgresStudentRepository implements StudentRepository using PostgreSQL.
type PostgresStudentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStudentRepository creates a new PostgresStudentRepository.
func NewPostgresStudentRepository(pool *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{pool: pool}
}

// FindByNaturalKey returns the student matching either natural key, or nil.
// Empty keys are ignored; an email match wins over an admission number match.
func (r *PostgresStudentRepository) FindByNaturalKey(ctx context.Context, tenantID, email, admissionNumber string) (*domain.Student, error) {
	if email == "" && admissionNumber == "" {
		return nil, nil
	}

	s, err := scanStudent(r.pool.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE tenant_id = $1
			AND (($2::text IS NOT NULL AND LOWER(email) = LOWER($2))
				OR ($3::text IS NOT NULL AND admission_number = $3))
		ORDER BY (LOWER(email) = LOWER($2)) DESC NULLS LAST
		LIMIT 1
	`, tenantID, nullable(email), nullable(admissionNumber)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError("find student", err)
	}
	return s, nil
}

// Create inserts a student. A natural key collision returns domain.ErrDuplicate.
func (r *PostgresStudentRepository) Create(ctx context.Context, s *domain.Student) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO students (`+studentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, studentArgs(s)...)
	return mapError("insert student", err)
}

// FindOrCreate inserts s unless a student with the same natural key exists.
// On a collision s.ID is set to the existing student and created is false,
// so concurrent imports of the same row persist exactly one student.
func (r *PostgresStudentRepository) FindOrCreate(ctx context.Context, s *domain.Student) (bool, error) {
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO students (`+studentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT DO NOTHING
		RETURNING id
	`, studentArgs(s)...).Scan(&id)
	if err == nil {
		s.ID = id
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, mapError("find or create student", err)
	}

	existing, err := r.FindByNaturalKey(ctx, s.TenantID, s.Email, s.AdmissionNumber)
	if err != nil {
		return false, err
	}
	if existing == nil {
		// the conflicting row was removed between the insert and the lookup
		return false, mapError("find or create student", domain.ErrDuplicate)
	}
	s.ID = existing.ID
	return false, nil
}

// Update overwrites the mutable fields of an existing student.
func (r *PostgresStudentRepository) Update(ctx context.Context, s *domain.Student) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE students
		SET class_id = $3, first_name = $4, middle_name = $5, last_name = $6, email = $7, gender = $8,
			date_of_birth = $9, admission_number = $10, phone = $11, guardian_name = $12,
			guardian_phone = $13, guardian_email = $14, address = $15, updated_at = $16
		WHERE id = $1 AND tenant_id = $2
	`, s.ID, s.TenantID, s.ClassID, s.FirstName, nullable(s.MiddleName), s.LastName, nullable(s.Email), s.Gender,
		s.DateOfBirth, nullable(s.AdmissionNumber), nullable(s.Phone), nullable(s.GuardianName),
		nullable(s.GuardianPhone), nullable(s.GuardianEmail), nullable(s.Address), s.UpdatedAt)
	if err != nil {
		return mapError("update student", err)
	}
	if tag.RowsAffected() == 0 {
		return mapError("update student", domain.ErrNotFound)
	}
	return nil
}

// ListByClass returns the students of a class ordered by name.
func (r *PostgresStudentRepository) ListByClass(ctx context.Context, tenantID, classID string) ([]domain.Student, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE tenant_id = $1 AND class_id = $2
		ORDER BY last_name, first_name, id
	`, tenantID, classID)
	if err != nil {
		return nil, mapError("list students", err)
	}
	defer rows.Close()

	students := make([]domain.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, mapError("scan student", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list students", err)
	}
	return students, nil
}

func studentArgs(s *domain.Student) []any {
	return []any{
		s.ID, s.TenantID, s.ClassID, s.FirstName, nullable(s.MiddleName), s.LastName,
		nullable(strings.ToLower(s.Email)), s.Gender, s.DateOfBirth, nullable(s.AdmissionNumber),
		nullable(s.Phone), nullable(s.GuardianName), nullable(s.GuardianPhone), nullable(s.GuardianEmail),
		nullable(s.Address), nullable(s.CreatedBy), s.CreatedAt, s.UpdatedAt,
	}
}

func scanStudent(row pgx.Row) (*domain.Student, error) {
	var s domain.Student
	var middle, email, admission, phone, gName, gPhone, gEmail, address, createdBy *string

	err := row.Scan(&s.ID, &s.TenantID, &s.ClassID, &s.FirstName, &middle, &s.LastName, &email, &s.Gender,
		&s.DateOfBirth, &admission, &phone, &gName, &gPhone, &gEmail, &address,
		&createdBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.MiddleName = deref(middle)
	s.Email = deref(email)
	s.AdmissionNumber = deref(admission)
	s.Phone = deref(phone)
	s.GuardianName = deref(gName)
	s.GuardianPhone = deref(gPhone)
	s.GuardianEmail = deref(gEmail)
	s.Address = deref(address)
	s.CreatedBy = deref(createdBy)
	return &s, nil
}
