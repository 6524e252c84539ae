package ports

import (
	"context"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

type DashboardService interface {
	Stats(ctx context.Context, userID uint64) (domain.DashboardStats, error)
}
