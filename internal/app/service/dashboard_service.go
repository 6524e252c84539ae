package service

import (
	"context"
	"time"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/ports"
)

const recentTasksLimit = 5

// DashboardService computes per-user statistics. Strictly read-only and
// computed fresh on every call.
type DashboardService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewDashboardService(taskRepository ports.TaskRepository) *DashboardService {
	return &DashboardService{taskRepository: taskRepository, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error) {
	since := s.now().Add(-domain.RecentlyDoneWindow)

	doneRecently, err := s.taskRepository.CountDoneSince(ctx, since)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	distribution, err := s.taskRepository.CountByStatus(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	urgent, err := s.taskRepository.UrgentToDo(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	yourTasks, err := s.taskRepository.ListRecentAssignedTo(ctx, userID, recentTasksLimit)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	assigned, err := s.taskRepository.CountAssignedTo(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	reviewing, err := s.taskRepository.CountReviewedBy(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	return domain.DashboardStats{
		TasksDoneRecently:   doneRecently,
		TicketsDistribution: distribution,
		UrgentToDo:          urgent,
		YourTasks:           yourTasks,
		TasksInsights: domain.TaskInsights{
			AssignedToYou: assigned,
			ToReview:      reviewing,
		},
	}, nil
}

var _ ports.DashboardService = (*DashboardService)(nil)
