package mapper

import (
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/adapter/http/dto"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

func ToDashboard(stats domain.DashboardStats) dto.Dashboard {
	var nextDeadline *dto.NextDeadline
	if deadline := stats.UrgentToDo.NextDeadline; deadline != nil {
		nextDeadline = &dto.NextDeadline{
			ID:      deadline.ID,
			Title:   deadline.Title,
			DueDate: deadline.DueDate.Format("2006-01-02"),
		}
	}

	return dto.Dashboard{
		TasksDoneRecently: stats.TasksDoneRecently,
		TicketsDistribution: dto.TicketsDistribution{
			ToDo:       stats.TicketsDistribution.ToDo,
			InProgress: stats.TicketsDistribution.InProgress,
			Review:     stats.TicketsDistribution.Review,
			Done:       stats.TicketsDistribution.Done,
		},
		UrgentToDo: dto.UrgentToDo{
			Count:        stats.UrgentToDo.Count,
			NextDeadline: nextDeadline,
		},
		YourTasks: ToTaskItems(stats.YourTasks),
		TasksInsights: dto.TasksInsights{
			AssignedToYou: stats.TasksInsights.AssignedToYou,
			ToReview:      stats.TasksInsights.ToReview,
		},
	}
}
