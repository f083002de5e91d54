package models

// ProfileID — фиксированный идентификатор единственной строки профиля.
const ProfileID = 1

// Profile описывает данные страницы "обо мне". Строка всегда одна (id = 1),
// запись выполняется как upsert.
type Profile struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Location  string `db:"location" json:"location"`
	Education string `db:"education" json:"education"`
	BioPt     string `db:"bio_pt" json:"bioPt"`
	BioEn     string `db:"bio_en" json:"bioEn"`
}

// DefaultProfile возвращает профиль-заглушку, который отдаётся публичной
// странице, пока администратор не сохранил свои данные.
func DefaultProfile() *Profile {
	return &Profile{
		ID:        ProfileID,
		Name:      "José Eugênio",
		Email:     "soujoseeugenio@gmail.com",
		Location:  "Brasília, Distrito Federal",
		Education: "Universidade Católica de Brasília",
		BioPt:     "José Eugênio é estudante de Arquitetura e Urbanismo.",
		BioEn:     "José Eugênio is an Architecture and Urbanism student.",
	}
}
