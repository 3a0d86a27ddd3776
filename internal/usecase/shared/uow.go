package shared

import (
	"context"

	"hall-allocation/internal/domain/hall"
	"hall-allocation/internal/domain/hallrequest"
	"hall-allocation/internal/domain/user"
	sqlc "hall-allocation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Halls() HallRepository
	HallRequests() HallRequestRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

type HallRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hall.Hall, error)
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error
	UpdateAllocation(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type HallRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *hallrequest.HallRequest) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hallrequest.HallRequest, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, r *hallrequest.HallRequest) error
	Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	DeleteAllForHallWithStatus(ctx context.Context, tx sqlc.DBTX, hallID uuid.UUID, status hallrequest.Status) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
