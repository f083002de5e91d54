package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joseeugenio/portfolio-backend/internal/models"
)

// ErrSoftwareNotFound возвращается, когда запись о программе не найдена.
var ErrSoftwareNotFound = errors.New("software not found")

// SoftwareRepository отвечает за работу с таблицей software.
type SoftwareRepository struct {
	db *sqlx.DB
}

// NewSoftwareRepository создаёт экземпляр репозитория.
func NewSoftwareRepository(db *sqlx.DB) *SoftwareRepository {
	return &SoftwareRepository{db: db}
}

// List возвращает все программы в порядке sort_order.
// Вторичная сортировка по id делает порядок стабильным при равных sort_order.
func (r *SoftwareRepository) List(ctx context.Context) ([]models.Software, error) {
	software := []models.Software{}
	query := `
		SELECT id, name, category, icon, description, sort_order
		FROM software
		ORDER BY sort_order ASC, id ASC
	`
	if err := r.db.SelectContext(ctx, &software, query); err != nil {
		return nil, fmt.Errorf("software repository: list %w", err)
	}
	return software, nil
}

// GetByID возвращает программу по идентификатору.
func (r *SoftwareRepository) GetByID(ctx context.Context, id int64) (*models.Software, error) {
	var software models.Software
	query := `
		SELECT id, name, category, icon, description, sort_order
		FROM software
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &software, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSoftwareNotFound
		}
		return nil, fmt.Errorf("software repository: get by id %w", err)
	}
	return &software, nil
}

// Create сохраняет новую программу.
func (r *SoftwareRepository) Create(ctx context.Context, software *models.Software) error {
	query := `
		INSERT INTO software (name, category, icon, description, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		software.Name,
		software.Category,
		software.Icon,
		software.Description,
		software.SortOrder,
	).Scan(&software.ID); err != nil {
		return fmt.Errorf("software repository: create %w", err)
	}

	return nil
}

// Update обновляет программу целиком.
func (r *SoftwareRepository) Update(ctx context.Context, software *models.Software) error {
	query := `
		UPDATE software
		SET name = $1, category = $2, icon = $3, description = $4, sort_order = $5
		WHERE id = $6
	`

	res, err := r.db.ExecContext(
		ctx,
		query,
		software.Name,
		software.Category,
		software.Icon,
		software.Description,
		software.SortOrder,
		software.ID,
	)
	if err != nil {
		return fmt.Errorf("software repository: update %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("software repository: update rows affected %w", err)
	}
	if affected == 0 {
		return ErrSoftwareNotFound
	}

	return nil
}

// Delete удаляет программу.
func (r *SoftwareRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM software WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("software repository: delete %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("software repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return ErrSoftwareNotFound
	}

	return nil
}
