package dto

import "popview/internal/api/models"

// CreateUserDTO used for POST /users
type CreateUserDTO struct {
	Name     string  `json:"name" binding:"required"`
	Image    *string `json:"image,omitempty"`
	Age      int     `json:"age" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
}

// UpdateUserDTO used for PUT /users/:user_id (partial updates allowed).
// Pointer fields distinguish "absent" from a zero value.
type UpdateUserDTO struct {
	Name     *string `json:"name,omitempty"`
	Image    *string `json:"image,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty"`
}

// HasChanges reports whether at least one field was supplied.
func (d UpdateUserDTO) HasChanges() bool {
	return d.Name != nil || d.Image != nil || d.Age != nil || d.Email != nil || d.Password != nil
}

// Fields returns the supplied columns, password excluded: the service hashes
// it and adds password_hash itself.
func (d UpdateUserDTO) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if d.Name != nil {
		fields["name"] = *d.Name
	}
	if d.Image != nil {
		fields["image"] = *d.Image
	}
	if d.Age != nil {
		fields["age"] = *d.Age
	}
	if d.Email != nil {
		fields["email"] = *d.Email
	}
	return fields
}

// UserResponse DTO for responses. No password field, ever.
type UserResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
	Age   int     `json:"age"`
	Email string  `json:"email"`
}

func FromUserToResponse(u models.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Image: u.Image,
		Age:   u.Age,
		Email: u.Email,
	}
}

func (d CreateUserDTO) ToModel() models.User {
	return models.User{
		Name:  d.Name,
		Image: d.Image,
		Age:   d.Age,
		Email: d.Email,
	}
}
