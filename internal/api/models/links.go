package models

// UserList links a user to a list they own. A list may have several owners
// and a user may own several lists.
type UserList struct {
	UserID int64 `json:"user_id" gorm:"primaryKey"`
	ListID int64 `json:"list_id" gorm:"primaryKey"`

	// Associations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	List *List `json:"list,omitempty" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE;"`
}

func (UserList) TableName() string {
	return "user_lists"
}

// ListTitle records membership of a title in a list. The composite primary
// key keeps a title from appearing in the same list twice.
type ListTitle struct {
	ListID  int64 `json:"list_id" gorm:"primaryKey"`
	TitleID int64 `json:"title_id" gorm:"primaryKey"`

	// Associations
	List  *List  `json:"list,omitempty" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE;"`
	Title *Title `json:"title,omitempty" gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE;"`
}

func (ListTitle) TableName() string {
	return "list_titles"
}

// UserTitle holds one user's opinion of one title: an optional comment and a
// personal rating. Rows are upserted on the composite key.
type UserTitle struct {
	UserID  int64   `json:"user_id" gorm:"primaryKey"`
	TitleID int64   `json:"title_id" gorm:"primaryKey"`
	Comment *string `json:"comment,omitempty" gorm:"type:text"`
	Rating  float64 `json:"rating" gorm:"not null;default:0"`

	// Associations
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Title *Title `json:"title,omitempty" gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE;"`
}

func (UserTitle) TableName() string {
	return "user_titles"
}
