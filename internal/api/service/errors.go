package service

import "errors"

// Domain errors surfaced to handlers. Storage failures pass through wrapped
// and are mapped to a generic 500.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrListNotFound        = errors.New("list not found")
	ErrTitleNotFound       = errors.New("title not found")
	ErrInteractionNotFound = errors.New("comment not found")

	ErrEmailTaken    = errors.New("email already registered")
	ErrAlreadyInList = errors.New("title already in list")
	ErrNotInList     = errors.New("title not in list")

	ErrNoFields      = errors.New("no fields to update")
	ErrInvalidRating = errors.New("rating must be between 0 and 4 in 0.5 steps")

	// Empty read results are reported as not-found for compatibility with
	// the existing API consumers. A fresh contract would return empty lists.
	ErrNoListsForUser  = errors.New("user has no lists")
	ErrNoTitlesInList  = errors.New("list has no titles")
	ErrNoCommentsFound = errors.New("no comments found")
)

// ValidRating reports whether r is one of the allowed discrete values:
// 0, 0.5, 1, ... 4.
func ValidRating(r float64) bool {
	if r < 0 || r > 4 {
		return false
	}
	doubled := r * 2
	return doubled == float64(int64(doubled))
}
