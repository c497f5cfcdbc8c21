package models

type Title struct {
	ID             int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Image          *string `json:"image,omitempty"`
	Name           string  `json:"name" gorm:"not null"`
	Description    *string `json:"description,omitempty"`
	Platforms      string  `json:"platforms" gorm:"not null"`
	Rating         float64 `json:"rating" gorm:"not null"` // base catalog rating, distinct from per-user ratings
	Comment        *string `json:"comment,omitempty" gorm:"type:text"`
	Genre          *string `json:"genre,omitempty"`
	RecommendedAge *int    `json:"recommended_age,omitempty"`
}

func (Title) TableName() string {
	return "titles"
}
