package ports

import (
	"context"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// ExistingIDs filters ids down to those that reference real users,
	// preserving store order. Unknown ids are dropped, not an error.
	ExistingIDs(ctx context.Context, ids []uint64) ([]uint64, error)
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (domain.AuthResult, error)
}
