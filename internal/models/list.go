// Package models defines the API entities and their request shapes.
package models

// List is a ToDo list owned by a single user.
type List struct {
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Color    string `json:"color"`
	BgColor  string `json:"bgColor"`
}

// ListCreateRequest is the POST /list body. Omitted optional fields
// receive their defaults in the repository.
type ListCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Priority int    `json:"priority"`
	Color    string `json:"color"`
	BgColor  string `json:"bgColor"`
}

// ListPatch is the PATCH /list/:listId body. Only non-nil fields are
// applied; anything outside these four fields is not updatable.
type ListPatch struct {
	Name     *string `json:"name"`
	Priority *int    `json:"priority"`
	Color    *string `json:"color"`
	BgColor  *string `json:"bgColor"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p ListPatch) IsEmpty() bool {
	return p.Name == nil && p.Priority == nil && p.Color == nil && p.BgColor == nil
}
