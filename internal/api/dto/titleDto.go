package dto

import "popview/internal/api/models"

// CreateTitleDTO used for POST /titles
type CreateTitleDTO struct {
	Image          *string `json:"image,omitempty"`
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description,omitempty"`
	Platforms      string  `json:"platforms" binding:"required"`
	Rating         float64 `json:"rating"`
	Comment        *string `json:"comment,omitempty"`
	Genre          *string `json:"genre,omitempty"`
	RecommendedAge *int    `json:"recommended_age,omitempty"`
}

// UpdateTitleDTO used for PUT /titles/:title_id (partial updates allowed)
type UpdateTitleDTO struct {
	Image          *string  `json:"image,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Platforms      *string  `json:"platforms,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	Comment        *string  `json:"comment,omitempty"`
	Genre          *string  `json:"genre,omitempty"`
	RecommendedAge *int     `json:"recommended_age,omitempty"`
}

func (d UpdateTitleDTO) HasChanges() bool {
	return d.Image != nil || d.Name != nil || d.Description != nil || d.Platforms != nil ||
		d.Rating != nil || d.Comment != nil || d.Genre != nil || d.RecommendedAge != nil
}

func (d UpdateTitleDTO) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if d.Image != nil {
		fields["image"] = *d.Image
	}
	if d.Name != nil {
		fields["name"] = *d.Name
	}
	if d.Description != nil {
		fields["description"] = *d.Description
	}
	if d.Platforms != nil {
		fields["platforms"] = *d.Platforms
	}
	if d.Rating != nil {
		fields["rating"] = *d.Rating
	}
	if d.Comment != nil {
		fields["comment"] = *d.Comment
	}
	if d.Genre != nil {
		fields["genre"] = *d.Genre
	}
	if d.RecommendedAge != nil {
		fields["recommended_age"] = *d.RecommendedAge
	}
	return fields
}

// TitleResponse DTO for responses
type TitleResponse struct {
	ID             int64   `json:"id"`
	Image          *string `json:"image,omitempty"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Platforms      string  `json:"platforms"`
	Rating         float64 `json:"rating"`
	Comment        *string `json:"comment,omitempty"`
	Genre          *string `json:"genre,omitempty"`
	RecommendedAge *int    `json:"recommended_age,omitempty"`
}

func FromTitleToResponse(t models.Title) TitleResponse {
	return TitleResponse{
		ID:             t.ID,
		Image:          t.Image,
		Name:           t.Name,
		Description:    t.Description,
		Platforms:      t.Platforms,
		Rating:         t.Rating,
		Comment:        t.Comment,
		Genre:          t.Genre,
		RecommendedAge: t.RecommendedAge,
	}
}

func (d CreateTitleDTO) ToModel() models.Title {
	return models.Title{
		Image:          d.Image,
		Name:           d.Name,
		Description:    d.Description,
		Platforms:      d.Platforms,
		Rating:         d.Rating,
		Comment:        d.Comment,
		Genre:          d.Genre,
		RecommendedAge: d.RecommendedAge,
	}
}
