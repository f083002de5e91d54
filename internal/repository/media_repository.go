package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joseeugenio/portfolio-backend/internal/models"
)

// ErrMediaNotFound сигнализирует об отсутствии записи в медиатеке.
var ErrMediaNotFound = errors.New("media not found")

// MediaRepository работает с таблицей media.
type MediaRepository struct {
	db *sqlx.DB
}

// NewMediaRepository создаёт экземпляр.
func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// List возвращает все записи медиатеки, свежие первыми.
func (r *MediaRepository) List(ctx context.Context) ([]models.Media, error) {
	media := []models.Media{}
	query := `
		SELECT id, name, url, type, category, project_name, created_at
		FROM media
		ORDER BY created_at DESC, id DESC
	`
	if err := r.db.SelectContext(ctx, &media, query); err != nil {
		return nil, fmt.Errorf("media repository: list %w", err)
	}
	return media, nil
}

// Create сохраняет запись о файле.
func (r *MediaRepository) Create(ctx context.Context, media *models.Media) error {
	query := `
		INSERT INTO media (name, url, type, category, project_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		media.Name,
		media.URL,
		media.Type,
		media.Category,
		media.ProjectName,
	).Scan(&media.ID, &media.CreatedAt); err != nil {
		return fmt.Errorf("media repository: create %w", err)
	}

	return nil
}

// GetByID возвращает запись о файле.
func (r *MediaRepository) GetByID(ctx context.Context, id int64) (*models.Media, error) {
	var media models.Media
	query := `
		SELECT id, name, url, type, category, project_name, created_at
		FROM media
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &media, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("media repository: get by id %w", err)
	}
	return &media, nil
}

// Delete удаляет запись о файле.
func (r *MediaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("media repository: delete %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("media repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return ErrMediaNotFound
	}

	return nil
}
