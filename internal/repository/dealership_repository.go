package repository

// This file defines the Dealership model and repository.  A dealership row
// is owned by exactly one user with the dealership role; the schema permits
// several dealerships per owner even though the API currently exposes only
// creation.  Optional columns use sql.NullString so that absent request
// fields stay NULL in the database rather than being coerced to "".

import (
	"context"
	"database/sql"
	"time"
)

// Dealership represents a row in the 'dealerships' table.
type Dealership struct {
	ID                  uint64
	OwnerUserID         uint64
	LegalName           string
	OperatingName       sql.NullString
	BusinessType        sql.NullString
	PrimaryContactName  sql.NullString
	Phone               sql.NullString
	Website             sql.NullString
	LogoURL             sql.NullString
	Province            string
	DealerLicenseNumber string
	CreatedAt           time.Time
}

type DealershipRepo struct{ DB *sql.DB }

func NewDealershipRepo(db *sql.DB) *DealershipRepo { return &DealershipRepo{DB: db} }

// Create inserts a dealership and populates its ID.  legal_name, province
// and dealer_license_number are NOT NULL in the schema; validation of those
// happens in the handler before this call.
func (r *DealershipRepo) Create(ctx context.Context, d *Dealership) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO dealerships
		 (owner_user_id, legal_name, operating_name, business_type, primary_contact_name,
		  phone, website, logo_url, province, dealer_license_number)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		d.OwnerUserID, d.LegalName, d.OperatingName, d.BusinessType, d.PrimaryContactName,
		d.Phone, d.Website, d.LogoURL, d.Province, d.DealerLicenseNumber)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return nil
}
