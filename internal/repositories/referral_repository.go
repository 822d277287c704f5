package repositories

import (
	"database/sql"
	"fmt"

	"secinstall/internal/models"
)

type ReferralRepository struct {
	db *sql.DB
}

func NewReferralRepository(db *sql.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

const referralColumns = `id, referrer_client_id, lead_id, referred_name, referred_phone, reward_amount, status, created_at`

func scanReferral(row interface{ Scan(...any) error }) (*models.Referral, error) {
	var rf models.Referral
	err := row.Scan(&rf.ID, &rf.ReferrerClientID, &rf.LeadID, &rf.ReferredName,
		&rf.ReferredPhone, &rf.RewardAmount, &rf.Status, &rf.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rf, nil
}

func (r *ReferralRepository) Create(rf *models.Referral) (int64, error) {
	const query = `
		INSERT INTO referrals (referrer_client_id, lead_id, referred_name, referred_phone, reward_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query, rf.ReferrerClientID, rf.LeadID, rf.ReferredName,
		rf.ReferredPhone, rf.RewardAmount, rf.Status, rf.CreatedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create referral: %w", err)
	}
	return id, nil
}

func (r *ReferralRepository) Update(rf *models.Referral) error {
	const query = `
		UPDATE referrals
		SET lead_id=$1, referred_name=$2, referred_phone=$3, reward_amount=$4, status=$5
		WHERE id=$6
	`
	if _, err := r.db.Exec(query, rf.LeadID, rf.ReferredName, rf.ReferredPhone,
		rf.RewardAmount, rf.Status, rf.ID); err != nil {
		return fmt.Errorf("update referral: %w", err)
	}
	return nil
}

func (r *ReferralRepository) GetByID(id int) (*models.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals WHERE id=$1`
	rf, err := scanReferral(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get referral: %w", err)
	}
	return rf, nil
}

func (r *ReferralRepository) Delete(id int) error {
	const query = `DELETE FROM referrals WHERE id=$1`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete referral: %w", err)
	}
	return nil
}

func (r *ReferralRepository) List(limit, offset int) ([]*models.Referral, error) {
	query := `SELECT ` + referralColumns + ` FROM referrals ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list referrals: %w", err)
	}
	defer rows.Close()

	var out []*models.Referral
	for rows.Next() {
		rf, err := scanReferral(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rf)
	}
	return out, rows.Err()
}
