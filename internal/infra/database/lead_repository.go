package database

import (
	"context"
	"database/sql"

	"github.com/mehrsalabs/leadbot/internal/entity"
)

type LeadStateRepository struct {
	DB *sql.DB
}

func NewLeadStateRepository(db *sql.DB) *LeadStateRepository {
	return &LeadStateRepository{DB: db}
}

// Load never treats a missing row as an error: an identity that never wrote
// anything is simply at the start of the dialog.
func (r *LeadStateRepository) Load(ctx context.Context, identity string) (*entity.LeadState, error) {
	query := `
		SELECT lang, name, phone, registration_date, step
		FROM leads
		WHERE identity = $1
	`

	var (
		lang, name, phone sql.NullString
		state             entity.LeadState
	)
	err := r.DB.QueryRowContext(ctx, query, identity).Scan(
		&lang,
		&name,
		&phone,
		&state.RegisteredAt,
		&state.Step,
	)
	if err == sql.ErrNoRows {
		return entity.DefaultLeadState(identity), nil
	}
	if err != nil {
		return nil, err
	}

	state.Identity = identity
	state.Language = lang.String
	state.Name = name.String
	state.Phone = phone.String
	return &state, nil
}

// Save upserts with merge-on-write: empty field values keep whatever is
// stored, step is always overwritten, registration_date only exists once.
func (r *LeadStateRepository) Save(ctx context.Context, identity, language, name, phone string, step entity.Step) error {
	query := `
		INSERT INTO leads (identity, lang, name, phone, step)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (identity)
		DO UPDATE SET
			lang = COALESCE(EXCLUDED.lang, leads.lang),
			name = COALESCE(EXCLUDED.name, leads.name),
			phone = COALESCE(EXCLUDED.phone, leads.phone),
			step = EXCLUDED.step
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		identity,
		nullString(language),
		nullString(name),
		nullString(phone),
		string(step),
	)
	return err
}

// Reset clears the captured fields and rewinds the dialog. The row is created
// when missing so a first-contact /start still registers the identity.
func (r *LeadStateRepository) Reset(ctx context.Context, identity string) error {
	query := `
		INSERT INTO leads (identity, step)
		VALUES ($1, $2)
		ON CONFLICT (identity)
		DO UPDATE SET
			lang = NULL,
			name = NULL,
			phone = NULL,
			step = EXCLUDED.step
	`

	_, err := r.DB.ExecContext(ctx, query, identity, string(entity.StepAwaitingLangSelection))
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
