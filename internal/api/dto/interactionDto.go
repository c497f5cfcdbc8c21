package dto

import "popview/internal/api/models"

// UpsertCommentDTO used for POST /users/:user_id/titles/:title_id/comments
type UpsertCommentDTO struct {
	Comment string  `json:"comment" binding:"required"`
	Rating  float64 `json:"rating"`
}

// UpdateCommentDTO used for PUT on the same path (partial updates allowed)
type UpdateCommentDTO struct {
	Comment *string  `json:"comment,omitempty"`
	Rating  *float64 `json:"rating,omitempty"`
}

func (d UpdateCommentDTO) HasChanges() bool {
	return d.Comment != nil || d.Rating != nil
}

func (d UpdateCommentDTO) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if d.Comment != nil {
		fields["comment"] = *d.Comment
	}
	if d.Rating != nil {
		fields["rating"] = *d.Rating
	}
	return fields
}

// SetRatingDTO used for PUT /users/:user_id/titles/:title_id/rating.
// Pointer so a rating of 0 still binds.
type SetRatingDTO struct {
	Rating *float64 `json:"rating" binding:"required"`
}

// CommentResponse is one user's opinion of one title.
type CommentResponse struct {
	Comment *string `json:"comment,omitempty"`
	Rating  float64 `json:"rating"`
}

// TitleCommentResponse is one row of the per-title comment listing.
type TitleCommentResponse struct {
	UserID  int64   `json:"user_id"`
	Comment *string `json:"comment,omitempty"`
	Rating  float64 `json:"rating"`
}

func FromInteractionToComment(i models.UserTitle) CommentResponse {
	return CommentResponse{Comment: i.Comment, Rating: i.Rating}
}

func FromInteractionToTitleComment(i models.UserTitle) TitleCommentResponse {
	return TitleCommentResponse{UserID: i.UserID, Comment: i.Comment, Rating: i.Rating}
}
