package models

import (
	"github.com/lib/pq"
)

// Project описывает архитектурный проект в портфолио.
// В базе обложка хранится в колонке thumbnail; наружу поле отдаётся как image,
// маппинг выполняет HTTP слой.
type Project struct {
	ID            int64          `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Location      string         `db:"location" json:"location"`
	Year          string         `db:"year" json:"year"`
	Thumbnail     string         `db:"thumbnail" json:"thumbnail"`
	Gallery       pq.StringArray `db:"gallery" json:"gallery"`
	DescriptionPt string         `db:"description_pt" json:"descriptionPt"`
	DescriptionEn string         `db:"description_en" json:"descriptionEn"`
}
