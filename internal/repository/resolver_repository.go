package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
)

// PostgresResolverRepository implements ResolverRepository using PostgreSQL.
type PostgresResolverRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresResolverRepository creates a new PostgresResolverRepository.
func NewPostgresResolverRepository(pool *pgxpool.Pool) *PostgresResolverRepository {
	return &PostgresResolverRepository{pool: pool}
}

// FindClassesByName returns every class of the tenant whose name matches,
// ignoring case and surrounding whitespace.
func (r *PostgresResolverRepository) FindClassesByName(ctx context.Context, tenantID, name string) ([]domain.Class, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, name
		FROM classes
		WHERE tenant_id = $1 AND LOWER(TRIM(name)) = LOWER(TRIM($2))
		ORDER BY id
	`, tenantID, name)
	if err != nil {
		return nil, mapError("find classes", err)
	}
	defer rows.Close()

	classes := make([]domain.Class, 0)
	for rows.Next() {
		var c domain.Class
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name); err != nil {
			return nil, mapError("scan class", err)
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("find classes", err)
	}
	return classes, nil
}

// ListClassNames returns the distinct class names of a tenant.
func (r *PostgresResolverRepository) ListClassNames(ctx context.Context, tenantID string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT name FROM classes WHERE tenant_id = $1 ORDER BY name
	`, tenantID)
	if err != nil {
		return nil, mapError("list class names", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, mapError("scan class name", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list class names", err)
	}
	return names, nil
}

// GetClass returns a class of the tenant, or nil.
func (r *PostgresResolverRepository) GetClass(ctx context.Context, tenantID, id string) (*domain.Class, error) {
	var c domain.Class
	err := r.pool.QueryRow(ctx, `SELECT id, tenant_id, name FROM classes WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(&c.ID, &c.TenantID, &c.Name)
	return found(&c, "get class", err)
}

// GetSubject returns a subject of the tenant, or nil.
func (r *PostgresResolverRepository) GetSubject(ctx context.Context, tenantID, id string) (*domain.Subject, error) {
	var s domain.Subject
	err := r.pool.QueryRow(ctx, `SELECT id, tenant_id, name FROM subjects WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(&s.ID, &s.TenantID, &s.Name)
	return found(&s, "get subject", err)
}

// GetTerm returns a term of the tenant, or nil.
func (r *PostgresResolverRepository) GetTerm(ctx context.Context, tenantID, id string) (*domain.Term, error) {
	var t domain.Term
	err := r.pool.QueryRow(ctx, `SELECT id, tenant_id, name FROM terms WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(&t.ID, &t.TenantID, &t.Name)
	return found(&t, "get term", err)
}

// StudentInClass reports whether the student belongs to the class.
func (r *PostgresResolverRepository) StudentInClass(ctx context.Context, tenantID, classID, studentID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM students WHERE tenant_id = $1 AND class_id = $2 AND id = $3)
	`, tenantID, classID, studentID).Scan(&exists)
	if err != nil {
		err = mapError("check student class", err)
		// a malformed identifier cannot belong to any class
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

// found maps a single-row lookup to (value, nil), (nil, nil) or an error.
// Malformed identifiers are reported as missing.
func found[T any](v *T, op string, err error) (*T, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		err = mapError(op, err)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}
