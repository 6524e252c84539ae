package domain

import "time"

// RecentlyDoneWindow is the rolling window used for "tasks done recently"
// counts, on the dashboard and in the X-Tasks-Done-Recently header.
const RecentlyDoneWindow = 14 * 24 * time.Hour

type StatusDistribution struct {
	ToDo       int
	InProgress int
	Review     int
	Done       int
}

type DeadlineTask struct {
	ID      uint64
	Title   string
	DueDate time.Time
}

type UrgentSummary struct {
	Count        int
	NextDeadline *DeadlineTask
}

type TaskInsights struct {
	AssignedToYou int
	ToReview      int
}

type DashboardStats struct {
	TasksDoneRecently   int
	TicketsDistribution StatusDistribution
	UrgentToDo          UrgentSummary
	YourTasks           []Task
	TasksInsights       TaskInsights
}
