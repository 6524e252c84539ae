package dto

type TaskItem struct {
	ID          uint64    `json:"id"`
	Board       uint64    `json:"board"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Assignee    *UserMini `json:"assignee"`
	Reviewer    *UserMini `json:"reviewer"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type CreateTaskRequest struct {
	Board       *uint64 `json:"board" binding:"required"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority" binding:"omitempty,max=20"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID  *uint64 `json:"assignee_id"`
	ReviewerID  *uint64 `json:"reviewer_id"`
}

// UpdateTaskRequest deliberately has no board field: the board reference is
// immutable and payloads naming it are rejected outright.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority" binding:"omitempty,max=20"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	AssigneeID  *uint64 `json:"assignee_id"`
	ReviewerID  *uint64 `json:"reviewer_id"`
}
