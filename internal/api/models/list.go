package models

type List struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string  `json:"title" gorm:"not null"`
	Description *string `json:"description,omitempty"`
	Private     bool    `json:"private" gorm:"not null"`
}

func (List) TableName() string {
	return "lists"
}
