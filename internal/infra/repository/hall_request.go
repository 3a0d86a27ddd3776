package repository

import (
	"context"

	"hall-allocation/internal/domain/hallrequest"
	"hall-allocation/internal/infra"
	"hall-allocation/internal/infra/repository/converter"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type HallRequestWriteQueries interface {
	CreateHallRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHallRequestParams) (sqlc.HallRequests, error)
	GetHallRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.HallRequests, error)
	UpdateHallRequestStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHallRequestStatusParams) (int64, error)
	DeleteHallRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DeleteHallRequestsByHallAndStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteHallRequestsByHallAndStatusParams) (int64, error)
}

type HallRequestRepository struct {
	queries HallRequestWriteQueries
}

func NewHallRequestRepository(queries HallRequestWriteQueries) *HallRequestRepository {
	return &HallRequestRepository{queries: queries}
}

func (r *HallRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *hallrequest.HallRequest) error {
	if _, err := r.queries.CreateHallRequest(ctx, tx, converter.HallRequestToCreateParams(req)); err != nil {
		return infra.WrapRepoErr("failed to create hall request", err)
	}
	return nil
}

func (r *HallRequestRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*hallrequest.HallRequest, error) {
	row, err := r.queries.GetHallRequestByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock hall request", err)
	}
	return toHallRequest(row)
}

func (r *HallRequestRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, req *hallrequest.HallRequest) error {
	n, err := r.queries.UpdateHallRequestStatus(ctx, tx, sqlc.UpdateHallRequestStatusParams{
		ID:        req.ID(),
		Status:    req.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(req.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update hall request status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HallRequestRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteHallRequest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hall request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("hall request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HallRequestRepository) DeleteAllForHallWithStatus(ctx context.Context, tx sqlc.DBTX, hallID uuid.UUID, status hallrequest.Status) (int64, error) {
	n, err := r.queries.DeleteHallRequestsByHallAndStatus(ctx, tx, sqlc.DeleteHallRequestsByHallAndStatusParams{
		HallID: hallID,
		Status: status.String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete hall requests", err)
	}
	return n, nil
}

func toHallRequest(row sqlc.HallRequests) (*hallrequest.HallRequest, error) {
	req, err := converter.HallRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored hall request is invalid", err, infra.KindDBFailure)
	}
	return req, nil
}
