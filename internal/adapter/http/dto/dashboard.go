package dto

type TicketsDistribution struct {
	ToDo       int `json:"to_do"`
	InProgress int `json:"in_progress"`
	Review     int `json:"review"`
	Done       int `json:"done"`
}

type NextDeadline struct {
	ID      uint64 `json:"id"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
}

type UrgentToDo struct {
	Count        int           `json:"count"`
	NextDeadline *NextDeadline `json:"next_deadline"`
}

type TasksInsights struct {
	AssignedToYou int `json:"assigned_to_you"`
	ToReview      int `json:"to_review"`
}

type Dashboard struct {
	TasksDoneRecently   int                 `json:"tasks_done_recently"`
	TicketsDistribution TicketsDistribution `json:"tickets_distribution"`
	UrgentToDo          UrgentToDo          `json:"urgent_to_do"`
	YourTasks           []TaskItem          `json:"your_tasks"`
	TasksInsights       TasksInsights       `json:"tasks_insights"`
}
