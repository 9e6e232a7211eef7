package models

// Todo is a single task. ListID 0 means the task is not assigned to any
// list. Created is an epoch-millisecond timestamp set by the repository.
type Todo struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	ListID      int    `json:"listId"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Created     int64  `json:"created"`
	Priority    int    `json:"priority"`
	DueToDate   string `json:"dueToDate"`
	DueToTime   string `json:"dueToTime"`
}

// TodoCreateRequest is the POST /todo body. Completed cannot be set at
// creation; a new todo always starts active.
type TodoCreateRequest struct {
	Description string `json:"description" binding:"required"`
	ListID      int    `json:"listId"`
	Priority    int    `json:"priority"`
	DueToDate   string `json:"dueToDate"`
	DueToTime   string `json:"dueToTime"`
}

// TodoPatch is the PATCH /todo/:id body.
type TodoPatch struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	ListID      *int    `json:"listId"`
	Priority    *int    `json:"priority"`
	DueToDate   *string `json:"dueToDate"`
	DueToTime   *string `json:"dueToTime"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p TodoPatch) IsEmpty() bool {
	return p.Description == nil && p.Completed == nil && p.ListID == nil &&
		p.Priority == nil && p.DueToDate == nil && p.DueToTime == nil
}
