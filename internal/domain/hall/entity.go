package hall

import (
	"time"

	"github.com/google/uuid"
)

// Hall is an exam room. allocation is non-nil iff status is allocated; the
// only methods that change either field are Allocate and Deallocate.
type Hall struct {
	id         uuid.UUID
	name       Name
	location   Location
	capacity   *Capacity
	status     Status
	allocation *Allocation
	createdAt  time.Time
	updatedAt  time.Time
}

func NewHall(name, location string, capacity *int, now time.Time) (*Hall, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	l, err := NewLocation(location)
	if err != nil {
		return nil, err
	}
	c, err := NewCapacity(capacity)
	if err != nil {
		return nil, err
	}

	return &Hall{
		id:        uuid.New(),
		name:      n,
		location:  l,
		capacity:  c,
		status:    StatusAvailable,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructHall rebuilds a persisted hall and rejects rows that break the
// status/allocation invariant.
func ReconstructHall(
	id uuid.UUID,
	name, location string,
	capacity *int,
	status string,
	allocation *Allocation,
	createdAt, updatedAt time.Time,
) (*Hall, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	l, err := NewLocation(location)
	if err != nil {
		return nil, err
	}
	c, err := NewCapacity(capacity)
	if err != nil {
		return nil, err
	}
	st, err := NewStatus(status)
	if err != nil {
		return nil, err
	}
	if (st == StatusAllocated) != (allocation != nil) {
		return nil, ErrInconsistentState
	}

	return &Hall{
		id:         id,
		name:       n,
		location:   l,
		capacity:   c,
		status:     st,
		allocation: allocation,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// Allocate binds a into the hall. An already allocated hall is rejected
// unless allowOverwrite is set, in which case the previous allocation is
// replaced.
func (h *Hall) Allocate(a Allocation, allowOverwrite bool) error {
	if h.status == StatusAllocated && !allowOverwrite {
		return ErrAlreadyAllocated
	}
	h.status = StatusAllocated
	h.allocation = &a
	h.updatedAt = a.allocatedAt
	return nil
}

// Deallocate returns the hall to available. It reports whether anything changed.
func (h *Hall) Deallocate(now time.Time) bool {
	if h.status == StatusAvailable {
		return false
	}
	h.status = StatusAvailable
	h.allocation = nil
	h.updatedAt = now
	return true
}

// UpdateDetails applies a partial change of the descriptive fields. Nothing is
// modified if any supplied value is invalid.
func (h *Hall) UpdateDetails(name, location *string, capacity *int, now time.Time) error {
	n, l, c := h.name, h.location, h.capacity
	var err error
	if name != nil {
		if n, err = NewName(*name); err != nil {
			return err
		}
	}
	if location != nil {
		if l, err = NewLocation(*location); err != nil {
			return err
		}
	}
	if capacity != nil {
		if c, err = NewCapacity(capacity); err != nil {
			return err
		}
	}

	h.name, h.location, h.capacity = n, l, c
	h.updatedAt = now
	return nil
}

func (h *Hall) ID() uuid.UUID           { return h.id }
func (h *Hall) Name() Name              { return h.name }
func (h *Hall) Location() Location      { return h.location }
func (h *Hall) Capacity() *Capacity     { return h.capacity }
func (h *Hall) Status() Status          { return h.status }
func (h *Hall) Allocation() *Allocation { return h.allocation }
func (h *Hall) IsAllocated() bool       { return h.status == StatusAllocated }
func (h *Hall) CreatedAt() time.Time    { return h.createdAt }
func (h *Hall) UpdatedAt() time.Time    { return h.updatedAt }
