package hallrequest

import "hall-allocation/internal/pkg/errs"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	// StatusRejected is part of the stored value set but no operation sets it yet.
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

var (
	ErrExamTitleRequired = errs.NewKind(errs.ErrValidation, "exam title is required")
	ErrExamTitleTooLong  = errs.NewKind(errs.ErrValidation, "exam title exceeds maximum length")
	ErrLecturerRequired  = errs.NewKind(errs.ErrValidation, "lecturer is required")
	ErrHallRequired      = errs.NewKind(errs.ErrValidation, "hall is required")
	ErrInvalidStatus     = errs.NewKind(errs.ErrValidation, "request status must be pending, approved or rejected")

	ErrNotFound   = errs.NewKind(errs.ErrNotFound, "hall request not found")
	ErrNotOwned   = errs.NewKind(errs.ErrAuthorization, "hall request belongs to another lecturer")
	ErrNotPending = errs.NewKind(errs.ErrConflict, "hall request is not pending")
)
