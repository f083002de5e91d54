package models

// Software описывает программу из списка навыков на странице "обо мне".
// SortOrder управляет порядком вывода и не обязан быть уникальным.
type Software struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Category    string `db:"category" json:"category"`
	Icon        string `db:"icon" json:"icon"`
	Description string `db:"description" json:"description"`
	SortOrder   int    `db:"sort_order" json:"order"`
}
