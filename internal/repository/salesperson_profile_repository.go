package repository

// SalespersonProfile is 1:1 with a user holding the salesperson role.  The
// unique index on user_id plus the upsert below guarantee at most one row
// per user.  license_expiry stays a free-form string for now ("2026-12-31");
// converting it to DATE is a schema change deferred until the provincial
// registry integration lands.

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SalespersonProfile represents a row in the 'salesperson_profiles' table.
type SalespersonProfile struct {
	ID               uint64
	UserID           uint64
	FullName         string
	Province         string
	IssuingAuthority sql.NullString
	LicenseNumber    sql.NullString
	LicenseExpiry    sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type SalespersonProfileRepo struct{ DB *sql.DB }

func NewSalespersonProfileRepo(db *sql.DB) *SalespersonProfileRepo {
	return &SalespersonProfileRepo{DB: db}
}

// GetByUserID fetches the profile owned by the given user, or ErrNotFound.
func (r *SalespersonProfileRepo) GetByUserID(ctx context.Context, userID uint64) (SalespersonProfile, error) {
	var p SalespersonProfile
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user_id, full_name, province, issuing_authority, license_number, license_expiry,
		        created_at, updated_at
		 FROM salesperson_profiles WHERE user_id=? LIMIT 1`,
		userID).Scan(&p.ID, &p.UserID, &p.FullName, &p.Province, &p.IssuingAuthority,
		&p.LicenseNumber, &p.LicenseExpiry, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return SalespersonProfile{}, ErrNotFound
	}
	return p, err
}

// Upsert writes all mutable fields of the profile keyed by user_id,
// creating the row on first save.  Full-replace semantics: every column is
// overwritten with the given value on each call, so saving twice with the
// same input leaves a single identical row.  The atomic
// INSERT ... ON DUPLICATE KEY UPDATE keeps concurrent first saves from
// producing two rows.
func (r *SalespersonProfileRepo) Upsert(ctx context.Context, p *SalespersonProfile) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO salesperson_profiles
		 (user_id, full_name, province, issuing_authority, license_number, license_expiry)
		 VALUES (?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   full_name=VALUES(full_name),
		   province=VALUES(province),
		   issuing_authority=VALUES(issuing_authority),
		   license_number=VALUES(license_number),
		   license_expiry=VALUES(license_expiry)`,
		p.UserID, p.FullName, p.Province, p.IssuingAuthority, p.LicenseNumber, p.LicenseExpiry)
	return err
}
