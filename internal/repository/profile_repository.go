package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joseeugenio/portfolio-backend/internal/models"
)

// ErrProfileNotFound возвращается, когда профиль ещё не сохранён.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository отвечает за единственную строку профиля (id = 1).
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository создаёт экземпляр репозитория.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get возвращает сохранённый профиль.
func (r *ProfileRepository) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	query := `
		SELECT id, name, email, location, education, bio_pt, bio_en
		FROM profile
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &profile, query, models.ProfileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("profile repository: get %w", err)
	}
	return &profile, nil
}

// Upsert сохраняет профиль под фиксированным id. Повторные сохранения
// обновляют ту же строку, вторая строка появиться не может.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	profile.ID = models.ProfileID

	query := `
		INSERT INTO profile (id, name, email, location, education, bio_pt, bio_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    location = EXCLUDED.location,
		    education = EXCLUDED.education,
		    bio_pt = EXCLUDED.bio_pt,
		    bio_en = EXCLUDED.bio_en
	`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.Name,
		profile.Email,
		profile.Location,
		profile.Education,
		profile.BioPt,
		profile.BioEn,
	); err != nil {
		return fmt.Errorf("profile repository: upsert %w", err)
	}

	return nil
}
