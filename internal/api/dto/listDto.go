package dto

import "popview/internal/api/models"

// CreateListDTO used for POST /lists. The owner link row is written in the
// same transaction as the list itself.
type CreateListDTO struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description,omitempty"`
	Private     *bool   `json:"private" binding:"required"`
	OwnerID     int64   `json:"owner_id" binding:"required"`
}

// UpdateListDTO used for PUT /lists/:list_id (partial updates allowed)
type UpdateListDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Private     *bool   `json:"private,omitempty"`
}

func (d UpdateListDTO) HasChanges() bool {
	return d.Title != nil || d.Description != nil || d.Private != nil
}

func (d UpdateListDTO) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if d.Title != nil {
		fields["title"] = *d.Title
	}
	if d.Description != nil {
		fields["description"] = *d.Description
	}
	if d.Private != nil {
		fields["private"] = *d.Private
	}
	return fields
}

// ListResponse DTO for responses
type ListResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Private     bool    `json:"private"`
}

func FromListToResponse(l models.List) ListResponse {
	return ListResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Private:     l.Private,
	}
}

func (d CreateListDTO) ToModel() models.List {
	return models.List{
		Title:       d.Title,
		Description: d.Description,
		Private:     *d.Private,
	}
}
