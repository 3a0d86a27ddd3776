package hall

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxNameLength     = 100
	MaxLocationLength = 200
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Name{}, ErrNameRequired
	}
	if len([]rune(t)) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Location{}, ErrLocationRequired
	}
	if len([]rune(t)) > MaxLocationLength {
		return Location{}, ErrLocationTooLong
	}
	return Location{value: t}, nil
}

func (l Location) String() string { return l.value }

// Capacity is optional; a nil *int means "not recorded".
type Capacity struct {
	value int
}

func NewCapacity(v *int) (*Capacity, error) {
	if v == nil {
		return nil, nil
	}
	if *v <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Capacity{value: *v}, nil
}

func (c Capacity) Value() int { return c.value }

// Allocation is the exam binding carried by an allocated hall.
type Allocation struct {
	lecturerID  uuid.UUID
	examTitle   string
	examDate    *time.Time
	allocatedAt time.Time
}

func NewAllocation(lecturerID uuid.UUID, examTitle string, examDate *time.Time, allocatedAt time.Time) (Allocation, error) {
	if lecturerID == uuid.Nil {
		return Allocation{}, ErrLecturerRequired
	}
	title := strings.TrimSpace(examTitle)
	if title == "" {
		return Allocation{}, ErrExamTitleRequired
	}
	return Allocation{
		lecturerID:  lecturerID,
		examTitle:   title,
		examDate:    examDate,
		allocatedAt: allocatedAt,
	}, nil
}

func (a Allocation) LecturerID() uuid.UUID  { return a.lecturerID }
func (a Allocation) ExamTitle() string      { return a.examTitle }
func (a Allocation) ExamDate() *time.Time   { return a.examDate }
func (a Allocation) AllocatedAt() time.Time { return a.allocatedAt }
