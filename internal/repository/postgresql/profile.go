package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/techdigi/hr-backoffice/internal/domain/profile"
	"github.com/techdigi/hr-backoffice/internal/pkg/calendar"
	"github.com/techdigi/hr-backoffice/internal/pkg/database"
)

const profileColumns = `p.id, p.user_id, p.joining_date, p.dob, p.address, p.city, p.state, p.pincode,
		p.profile_image, p.designation, p.pan_number, p.bank_account_number, p.created_at, p.updated_at,
		u.name, u.email`

type profileRepositoryImpl struct {
	db database.Pool
}

func NewProfileRepository(db database.Pool) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.JoiningDate,
		&p.DOB,
		&p.Address,
		&p.City,
		&p.State,
		&p.Pincode,
		&p.ProfileImage,
		&p.Designation,
		&p.PANNumber,
		&p.BankAccountNumber,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.UserName,
		&p.UserEmail,
	)
	return p, err
}

// GetByUserID implements profile.ProfileRepository.
func (r *profileRepositoryImpl) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + `
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1`

	p, err := scanProfile(q.QueryRow(ctx, query, userID))
	if err != nil {
		return profile.Profile{}, translate(err, profile.ErrProfileNotFound, nil)
	}
	return p, nil
}

// Upsert implements profile.ProfileRepository.
func (r *profileRepositoryImpl) Upsert(ctx context.Context, in profile.Profile) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH p AS (
			INSERT INTO profiles (
				user_id, joining_date, dob, address, city, state, pincode,
				profile_image, designation, pan_number, bank_account_number
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (user_id) DO UPDATE SET
				dob = EXCLUDED.dob,
				address = EXCLUDED.address,
				city = EXCLUDED.city,
				state = EXCLUDED.state,
				pincode = EXCLUDED.pincode,
				profile_image = EXCLUDED.profile_image,
				designation = EXCLUDED.designation,
				pan_number = EXCLUDED.pan_number,
				bank_account_number = EXCLUDED.bank_account_number,
				updated_at = NOW()
			RETURNING *
		)
		SELECT ` + profileColumns + `
		FROM p
		JOIN users u ON u.id = p.user_id`

	var dob *string
	if in.DOB != nil {
		d := calendar.DateKey(*in.DOB)
		dob = &d
	}

	saved, err := scanProfile(q.QueryRow(ctx, query,
		in.UserID,
		calendar.DateKey(in.JoiningDate),
		dob,
		in.Address,
		in.City,
		in.State,
		in.Pincode,
		in.ProfileImage,
		in.Designation,
		in.PANNumber,
		in.BankAccountNumber,
	))
	if err != nil {
		if isUniqueViolation(err, "profiles_pan_number_key") {
			return profile.Profile{}, profile.ErrPANExists
		}
		return profile.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return saved, nil
}
