package repository

import (
	"context"

	"hall-allocation/internal/domain/hall"
	"hall-allocation/internal/infra"
	"hall-allocation/internal/infra/repository/converter"
	sqlc "hall-allocation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type HallWriteQueries interface {
	CreateHall(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHallParams) (sqlc.Halls, error)
	GetHallByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Halls, error)
	UpdateHallDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHallDetailsParams) (int64, error)
	UpdateHallAllocation(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHallAllocationParams) (int64, error)
	DeleteHall(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type HallRepository struct {
	queries HallWriteQueries
}

func NewHallRepository(queries HallWriteQueries) *HallRepository {
	return &HallRepository{queries: queries}
}

func (r *HallRepository) Create(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error {
	if _, err := r.queries.CreateHall(ctx, tx, converter.HallToCreateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create hall", err)
	}
	return nil
}

func (r *HallRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hall.Hall, error) {
	row, err := r.queries.GetHallByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock hall", err)
	}
	h, err := converter.HallFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored hall is invalid", err, infra.KindDBFailure)
	}
	return h, nil
}

func (r *HallRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error {
	n, err := r.queries.UpdateHallDetails(ctx, tx, converter.HallToUpdateDetailsParams(h))
	if err != nil {
		return infra.WrapRepoErr("failed to update hall", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HallRepository) UpdateAllocation(ctx context.Context, tx sqlc.DBTX, h *hall.Hall) error {
	n, err := r.queries.UpdateHallAllocation(ctx, tx, converter.HallToUpdateAllocationParams(h))
	if err != nil {
		return infra.WrapRepoErr("failed to update hall allocation", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HallRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteHall(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hall", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall not found", nil, infra.KindNotFound)
	}
	return nil
}
