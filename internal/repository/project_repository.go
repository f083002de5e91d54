package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joseeugenio/portfolio-backend/internal/models"
)

// ErrProjectNotFound возвращается, когда проект не найден.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository отвечает за работу с таблицей projects.
type ProjectRepository struct {
	db *sqlx.DB
}

// NewProjectRepository создаёт экземпляр репозитория.
func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List возвращает все проекты, новые первыми.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	query := `
		SELECT id, title, location, year, thumbnail, gallery, description_pt, description_en
		FROM projects
		ORDER BY id DESC
	`
	if err := r.db.SelectContext(ctx, &projects, query); err != nil {
		return nil, fmt.Errorf("project repository: list %w", err)
	}
	return projects, nil
}

// GetByID возвращает проект по идентификатору.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	query := `
		SELECT id, title, location, year, thumbnail, gallery, description_pt, description_en
		FROM projects
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &project, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("project repository: get by id %w", err)
	}
	return &project, nil
}

// Create сохраняет новый проект.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (title, location, year, thumbnail, gallery, description_pt, description_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		project.Title,
		project.Location,
		project.Year,
		project.Thumbnail,
		project.Gallery,
		project.DescriptionPt,
		project.DescriptionEn,
	).Scan(&project.ID); err != nil {
		return fmt.Errorf("project repository: create %w", err)
	}

	return nil
}

// Update обновляет проект целиком (last-write-wins).
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, location = $2, year = $3, thumbnail = $4, gallery = $5,
		    description_pt = $6, description_en = $7
		WHERE id = $8
	`

	res, err := r.db.ExecContext(
		ctx,
		query,
		project.Title,
		project.Location,
		project.Year,
		project.Thumbnail,
		project.Gallery,
		project.DescriptionPt,
		project.DescriptionEn,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("project repository: update %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("project repository: update rows affected %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// Delete удаляет проект.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("project repository: delete %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("project repository: delete rows affected %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}
