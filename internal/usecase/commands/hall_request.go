package commands

import (
	"context"
	"time"

	"hall-allocation/internal/domain/hallrequest"
	"hall-allocation/internal/pkg/clock"
	"hall-allocation/internal/pkg/tracing"
	"hall-allocation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateHallRequestInput struct {
	HallID    uuid.UUID
	ExamTitle string
	ExamDate  *time.Time
}

type HallRequestCommands interface {
	Create(ctx context.Context, lecturerID uuid.UUID, in CreateHallRequestInput) (uuid.UUID, error)
	Cancel(ctx context.Context, requesterID, requestID uuid.UUID) error
}

type hallRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHallRequestCommands(uow shared.UnitOfWork, clk clock.Clock) HallRequestCommands {
	return &hallRequestCommandsImpl{uow: uow, clock: clk}
}

// Create records a pending request. The hall is neither looked up nor
// checked for availability; that happens at approval time.
func (uc *hallRequestCommandsImpl) Create(ctx context.Context, lecturerID uuid.UUID, in CreateHallRequestInput) (id uuid.UUID, err error) {
	ctx, span := tracing.StartSpan(ctx, "hall_request.create",
		attribute.String("actor.id", lecturerID.String()),
		attribute.String("hall.id", in.HallID.String()),
	)
	defer func() { tracing.EndSpan(span, err) }()

	r, err := hallrequest.NewHallRequest(lecturerID, in.HallID, in.ExamTitle, in.ExamDate, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.HallRequests().Create(ctx, tx.DB(), r)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return r.ID(), nil
}

// Cancel deletes the requester's own request regardless of its status.
func (uc *hallRequestCommandsImpl) Cancel(ctx context.Context, requesterID, requestID uuid.UUID) (err error) {
	ctx, span := tracing.StartSpan(ctx, "hall_request.cancel",
		attribute.String("actor.id", requesterID.String()),
		attribute.String("request.id", requestID.String()),
	)
	defer func() { tracing.EndSpan(span, err) }()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.HallRequests().FindByIDForUpdate(ctx, tx.DB(), requestID)
		if derr != nil {
			return shared.TranslateNotFound(derr, hallrequest.ErrNotFound)
		}
		if !r.IsOwnedBy(requesterID) {
			return hallrequest.ErrNotOwned
		}
		return shared.TranslateNotFound(tx.HallRequests().Delete(ctx, tx.DB(), requestID), hallrequest.ErrNotFound)
	})
}
