package hall

import "hall-allocation/internal/pkg/errs"

type Status string

const (
	StatusAvailable Status = "available"
	StatusAllocated Status = "allocated"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusAllocated:
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
	ErrNameRequired     = errs.NewKind(errs.ErrValidation, "hall name is required")
	ErrNameTooLong      = errs.NewKind(errs.ErrValidation, "hall name exceeds maximum length")
	ErrNameTaken        = errs.NewKind(errs.ErrValidation, "hall name is already taken")
	ErrLocationRequired = errs.NewKind(errs.ErrValidation, "hall location is required")
	ErrLocationTooLong  = errs.NewKind(errs.ErrValidation, "hall location exceeds maximum length")
	ErrInvalidCapacity  = errs.NewKind(errs.ErrValidation, "hall capacity must be a positive number")
	ErrInvalidStatus    = errs.NewKind(errs.ErrValidation, "hall status must be available or allocated")

	ErrLecturerRequired  = errs.NewKind(errs.ErrValidation, "allocation requires a lecturer")
	ErrExamTitleRequired = errs.NewKind(errs.ErrValidation, "allocation requires an exam title")
	ErrInconsistentState = errs.New("hall allocation does not match its status")

	ErrNotFound         = errs.NewKind(errs.ErrNotFound, "hall not found")
	ErrAlreadyAllocated = errs.NewKind(errs.ErrConflict, "hall is already allocated")
)
