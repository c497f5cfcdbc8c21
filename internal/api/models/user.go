package models

type User struct {
	ID       int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"not null"`
	Image    *string `json:"image,omitempty"`
	Age      int     `json:"age" gorm:"not null"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password string  `json:"-" gorm:"column:password_hash;not null"` // Not show in JSON
}

func (User) TableName() string {
	return "users"
}
