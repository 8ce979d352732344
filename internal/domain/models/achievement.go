package models

const (
	AchievementPersonal     = "personal"
	AchievementProfessional = "professional"
	AchievementTeaching     = "teaching"
)

type Achievement struct {
	ID    string `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
	Year  int    `json:"year" db:"year"`
	Type  string `json:"type" db:"type"`
	Icon  string `json:"icon" db:"icon"`
	Color string `json:"color" db:"color"`
}

type AchievementFilter struct {
	Type string
}
