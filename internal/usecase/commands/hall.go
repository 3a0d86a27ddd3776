package commands

import (
	"context"
	"log/slog"

	"hall-allocation/internal/domain/hall"
	"hall-allocation/internal/infra"
	"hall-allocation/internal/pkg/clock"
	"hall-allocation/internal/pkg/tracing"
	"hall-allocation/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CreateHallInput struct {
	Name     string
	Location string
	Capacity *int
}

// UpdateHallInput is a partial update; nil fields are left unchanged.
type UpdateHallInput struct {
	Name     *string
	Location *string
	Capacity *int
}

type HallCommands interface {
	Create(ctx context.Context, actorID uuid.UUID, in CreateHallInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID, hallID uuid.UUID, in UpdateHallInput) error
	Delete(ctx context.Context, actorID, hallID uuid.UUID) error
}

type hallCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache shared.HallCacheInvalidator
}

func NewHallCommands(uow shared.UnitOfWork, clk clock.Clock, cache shared.HallCacheInvalidator) HallCommands {
	return &hallCommandsImpl{uow: uow, clock: clk, cache: cache}
}

func (uc *hallCommandsImpl) Create(ctx context.Context, actorID uuid.UUID, in CreateHallInput) (id uuid.UUID, err error) {
	ctx, span := tracing.StartSpan(ctx, "hall.create", attribute.String("actor.id", actorID.String()))
	defer func() { tracing.EndSpan(span, err) }()

	h, err := hall.NewHall(in.Name, in.Location, in.Capacity, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateNameTaken(tx.Halls().Create(ctx, tx.DB(), h))
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.invalidate(ctx)
	slog.InfoContext(ctx, "hall created", "hall_id", h.ID(), "actor_id", actorID)
	return h.ID(), nil
}

func (uc *hallCommandsImpl) Update(ctx context.Context, actorID, hallID uuid.UUID, in UpdateHallInput) (err error) {
	ctx, span := tracing.StartSpan(ctx, "hall.update",
		attribute.String("actor.id", actorID.String()),
		attribute.String("hall.id", hallID.String()),
	)
	defer func() { tracing.EndSpan(span, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Halls().FindByIDForUpdate(ctx, tx.DB(), hallID)
		if derr != nil {
			return shared.TranslateNotFound(derr, hall.ErrNotFound)
		}
		if derr = h.UpdateDetails(in.Name, in.Location, in.Capacity, uc.clock.Now()); derr != nil {
			return derr
		}
		derr = tx.Halls().UpdateDetails(ctx, tx.DB(), h)
		return translateNameTaken(shared.TranslateNotFound(derr, hall.ErrNotFound))
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

// Delete removes the hall only. Requests that reference it are kept and
// show up without hall details.
func (uc *hallCommandsImpl) Delete(ctx context.Context, actorID, hallID uuid.UUID) (err error) {
	ctx, span := tracing.StartSpan(ctx, "hall.delete",
		attribute.String("actor.id", actorID.String()),
		attribute.String("hall.id", hallID.String()),
	)
	defer func() { tracing.EndSpan(span, err) }()

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return shared.TranslateNotFound(tx.Halls().Delete(ctx, tx.DB(), hallID), hall.ErrNotFound)
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx)
	slog.InfoContext(ctx, "hall deleted", "hall_id", hallID, "actor_id", actorID)
	return nil
}

func (uc *hallCommandsImpl) invalidate(ctx context.Context) {
	if err := uc.cache.InvalidateHalls(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate hall cache", "error", err.Error())
	}
}

func translateNameTaken(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return hall.ErrNameTaken
	}
	return err
}
