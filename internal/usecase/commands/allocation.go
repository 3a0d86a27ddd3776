package commands

import (
	"context"
	"log/slog"

	"hall-allocation/internal/domain/hall"
	"hall-allocation/internal/domain/hallrequest"
	"hall-allocation/internal/pkg/clock"
	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/pkg/tracing"
	"hall-allocation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type ApproveResult struct {
	RequestID  uuid.UUID
	HallID     uuid.UUID
	LecturerID uuid.UUID
}

type DeallocateResult struct {
	HallID         uuid.UUID
	PurgedRequests int64
}

// AllocationCommands moves halls between available and allocated. Each call
// runs in a single transaction holding row locks on the rows it changes.
type AllocationCommands interface {
	Approve(ctx context.Context, adminID, requestID uuid.UUID) (*ApproveResult, error)
	Deallocate(ctx context.Context, adminID, hallID uuid.UUID) (*DeallocateResult, error)
}

type allocationCommandsImpl struct {
	uow            shared.UnitOfWork
	clock          clock.Clock
	publisher      shared.EventPublisher
	cache          shared.HallCacheInvalidator
	allowOverwrite bool
}

func NewAllocationCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	publisher shared.EventPublisher,
	cache shared.HallCacheInvalidator,
	cfg config.Config,
) AllocationCommands {
	return &allocationCommandsImpl{
		uow:            uow,
		clock:          clk,
		publisher:      publisher,
		cache:          cache,
		allowOverwrite: cfg.Allocation.AllowOverwrite,
	}
}

// Approve allocates the request's hall to its lecturer and marks the request
// approved. The request must be pending and the hall must exist; an
// allocated hall is rejected unless overwriting is enabled.
func (uc *allocationCommandsImpl) Approve(ctx context.Context, adminID, requestID uuid.UUID) (res *ApproveResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "allocation.approve",
		attribute.String("actor.id", adminID.String()),
		attribute.String("request.id", requestID.String()),
	)
	defer func() { tracing.EndSpan(span, err) }()

	var event shared.AllocationEvent
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.HallRequests().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if derr != nil {
			return shared.TranslateNotFound(derr, hallrequest.ErrNotFound)
		}
		if req.Status() != hallrequest.StatusPending {
			return hallrequest.ErrNotPending
		}

		h, derr := tx.Halls().FindByIDForUpdate(ctx, tx.DB(), req.HallID())
		if derr != nil {
			return shared.TranslateNotFound(derr, hall.ErrNotFound)
		}

		now := uc.clock.Now()
		alloc, derr := hall.NewAllocation(req.LecturerID(), req.ExamTitle(), req.ExamDate(), now)
		if derr != nil {
			return derr
		}
		if h.IsAllocated() && uc.allowOverwrite {
			slog.WarnContext(ctx, "overwriting existing hall allocation",
				"hall_id", h.ID(),
				"previous_lecturer_id", h.Allocation().LecturerID(),
				"request_id", requestID)
		}
		if derr = h.Allocate(alloc, uc.allowOverwrite); derr != nil {
			return derr
		}
		if derr = req.Approve(now); derr != nil {
			return derr
		}

		if derr = tx.Halls().UpdateAllocation(ctx, tx.DB(), h); derr != nil {
			return shared.TranslateNotFound(derr, hall.ErrNotFound)
		}
		if derr = tx.HallRequests().UpdateStatus(ctx, tx.DB(), req); derr != nil {
			return shared.TranslateNotFound(derr, hallrequest.ErrNotFound)
		}

		lecturerID, reqID := req.LecturerID(), req.ID()
		event = shared.AllocationEvent{
			Type:       shared.EventHallAllocated,
			HallID:     h.ID(),
			HallName:   h.Name().String(),
			RequestID:  &reqID,
			LecturerID: &lecturerID,
			ExamTitle:  req.ExamTitle(),
			ActorID:    adminID,
			OccurredAt: now,
		}
		res = &ApproveResult{RequestID: reqID, HallID: h.ID(), LecturerID: lecturerID}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, event)
	slog.InfoContext(ctx, "hall request approved",
		"request_id", res.RequestID,
		"hall_id", res.HallID,
		"lecturer_id", res.LecturerID,
		"actor_id", adminID)
	return res, nil
}

// Deallocate frees the hall and removes its approved requests. Calling it on
// an available hall is not an error; approved requests are still purged.
func (uc *allocationCommandsImpl) Deallocate(ctx context.Context, adminID, hallID uuid.UUID) (res *DeallocateResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "allocation.deallocate",
		attribute.String("actor.id", adminID.String()),
		attribute.String("hall.id", hallID.String()),
	)
	defer func() { tracing.EndSpan(span, err) }()

	var event shared.AllocationEvent
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Halls().FindByIDForUpdate(ctx, tx.DB(), hallID)
		if derr != nil {
			return shared.TranslateNotFound(derr, hall.ErrNotFound)
		}

		now := uc.clock.Now()
		var lecturerID *uuid.UUID
		if a := h.Allocation(); a != nil {
			id := a.LecturerID()
			lecturerID = &id
		}
		if h.Deallocate(now) {
			if derr = tx.Halls().UpdateAllocation(ctx, tx.DB(), h); derr != nil {
				return shared.TranslateNotFound(derr, hall.ErrNotFound)
			}
		}

		purged, derr := tx.HallRequests().DeleteAllForHallWithStatus(ctx, tx.DB(), hallID, hallrequest.StatusApproved)
		if derr != nil {
			return derr
		}

		event = shared.AllocationEvent{
			Type:           shared.EventHallDeallocated,
			HallID:         h.ID(),
			HallName:       h.Name().String(),
			LecturerID:     lecturerID,
			ActorID:        adminID,
			PurgedRequests: &purged,
			OccurredAt:     now,
		}
		res = &DeallocateResult{HallID: h.ID(), PurgedRequests: purged}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.afterCommit(ctx, event)
	slog.InfoContext(ctx, "hall deallocated",
		"hall_id", res.HallID,
		"purged_requests", res.PurgedRequests,
		"actor_id", adminID)
	return res, nil
}

// afterCommit runs the side effects of a committed allocation change. They
// never fail the operation.
func (uc *allocationCommandsImpl) afterCommit(ctx context.Context, event shared.AllocationEvent) {
	if err := uc.cache.InvalidateHalls(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate hall cache", "error", err.Error())
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish allocation event",
			"type", string(event.Type),
			"hall_id", event.HallID,
			"error", err.Error())
	}
}
