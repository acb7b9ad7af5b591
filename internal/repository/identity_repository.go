package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Yaswanth6303/Timetable-Project/internal/models"
)

// Credential tables, one per role. Email uniqueness is enforced per table;
// there is no cross-role uniqueness.
const (
	TableAdmins          = "admins"
	TableFacultyAccounts = "faculty_accounts"
)

// IdentityRepository provides database access to one role's credential
// collection. The same implementation backs admins and faculty accounts,
// parameterized by table.
type IdentityRepository struct {
	db    *sqlx.DB
	table string
}

// NewIdentityRepository creates a repository bound to one credential table.
func NewIdentityRepository(db *sqlx.DB, table string) *IdentityRepository {
	return &IdentityRepository{db: db, table: table}
}

// FindByEmail returns an identity by email address.
func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*models.Identity, error) {
	query := fmt.Sprintf(`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM %s WHERE email = $1 LIMIT 1`, r.table)
	var identity models.Identity
	if err := r.db.GetContext(ctx, &identity, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find %s identity by email: %w", r.table, err)
	}
	return &identity, nil
}

// FindByID returns an identity by identifier.
func (r *IdentityRepository) FindByID(ctx context.Context, id string) (*models.Identity, error) {
	query := fmt.Sprintf(`SELECT id, first_name, last_name, email, password_hash, created_at, updated_at FROM %s WHERE id = $1 LIMIT 1`, r.table)
	var identity models.Identity
	if err := r.db.GetContext(ctx, &identity, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find %s identity by id: %w", r.table, err)
	}
	return &identity, nil
}

// CreateIdentity inserts a new identity. A duplicate email surfaces as the
// table's unique constraint violation; callers map that to a conflict.
func (r *IdentityRepository) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	if identity.ID == "" {
		identity.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = now
	}
	identity.UpdatedAt = now

	query := fmt.Sprintf(`INSERT INTO %s (id, first_name, last_name, email, password_hash, created_at, updated_at) VALUES (:id, :first_name, :last_name, :email, :password_hash, :created_at, :updated_at)`, r.table)
	if _, err := r.db.NamedExecContext(ctx, query, identity); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create %s identity: %w", r.table, err)
	}
	return nil
}

// UpdateProfile overwrites the name fields of an identity.
func (r *IdentityRepository) UpdateProfile(ctx context.Context, id, firstName, lastName string) error {
	query := fmt.Sprintf(`UPDATE %s SET first_name = $2, last_name = $3, updated_at = $4 WHERE id = $1`, r.table)
	if _, err := r.db.ExecContext(ctx, query, id, firstName, lastName, time.Now().UTC()); err != nil {
		return fmt.Errorf("update %s profile: %w", r.table, err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *IdentityRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET password_hash = $2, updated_at = $3 WHERE id = $1`, r.table)
	if _, err := r.db.ExecContext(ctx, query, id, passwordHash, time.Now().UTC()); err != nil {
		return fmt.Errorf("update %s password: %w", r.table, err)
	}
	return nil
}
