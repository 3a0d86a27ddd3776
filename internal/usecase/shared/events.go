package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventHallAllocated   EventType = "hall.allocated"
	EventHallDeallocated EventType = "hall.deallocated"
)

// AllocationEvent is the audit record emitted after an allocation change
// has been committed.
type AllocationEvent struct {
	Type           EventType  `json:"type"`
	HallID         uuid.UUID  `json:"hallId"`
	HallName       string     `json:"hallName"`
	RequestID      *uuid.UUID `json:"requestId,omitempty"`
	LecturerID     *uuid.UUID `json:"lecturerId,omitempty"`
	ExamTitle      string     `json:"examTitle,omitempty"`
	ActorID        uuid.UUID  `json:"actorId"`
	PurgedRequests *int64     `json:"purgedRequests,omitempty"`
	OccurredAt     time.Time  `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event AllocationEvent) error
}

// HallCacheInvalidator drops every cached hall listing.
type HallCacheInvalidator interface {
	InvalidateHalls(ctx context.Context) error
}
