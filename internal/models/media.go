package models

import (
	"time"
)

// Категории медиафайлов.
const (
	MediaCategoryThumbnail = "thumbnail"
	MediaCategoryGallery   = "gallery"
	MediaCategoryGeneral   = "general"
)

// ValidMediaCategories список валидных категорий медиафайлов.
var ValidMediaCategories = map[string]struct{}{
	MediaCategoryThumbnail: {},
	MediaCategoryGallery:   {},
	MediaCategoryGeneral:   {},
}

// Media описывает запись медиатеки. URL — локатор объекта: data-URI,
// локальный путь в каталоге ассетов либо публичная bucket-ссылка.
type Media struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	URL         string    `db:"url" json:"url"`
	Type        string    `db:"type" json:"type"`
	Category    string    `db:"category" json:"category"`
	ProjectName *string   `db:"project_name" json:"projectName,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
