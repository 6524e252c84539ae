package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "to-do"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the four known statuses. There is no
// transition graph: any valid status may replace any other.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

const DefaultTaskPriority = "medium"

type Task struct {
	ID            uint64
	BoardID       uint64
	Title         string
	Description   string
	Status        TaskStatus
	Priority      string
	Assignee      *User
	Reviewer      *User
	CreatedByID   *uint64
	DueDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CommentsCount int
}

type CreateTaskInput struct {
	BoardID     uint64
	Title       string
	Description string
	Status      TaskStatus
	Priority    string
	AssigneeID  *uint64
	ReviewerID  *uint64
	DueDate     *time.Time
}

// UpdateTaskInput is a partial update. The Set flags distinguish "field
// absent" from "field explicitly null". The board reference is immutable and
// has no place here.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *string
	AssigneeID     *uint64
	AssigneeIDSet  bool
	ReviewerID     *uint64
	ReviewerIDSet  bool
	DueDate        *time.Time
	DueDateSet     bool
}
