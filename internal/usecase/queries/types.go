package queries

import (
	"time"

	"github.com/google/uuid"
)

// AllocationView is the exam binding of an allocated hall, with the
// lecturer's name and email joined in.
type AllocationView struct {
	LecturerID    uuid.UUID  `json:"lecturer_id"`
	LecturerName  string     `json:"lecturer_name"`
	LecturerEmail string     `json:"lecturer_email"`
	ExamTitle     string     `json:"exam_title"`
	ExamDate      *time.Time `json:"exam_date,omitempty"`
	AllocatedAt   time.Time  `json:"allocated_at"`
}

type HallView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Location    string          `json:"location"`
	Capacity    *int            `json:"capacity,omitempty"`
	Status      string          `json:"status"`
	AllocatedTo *AllocationView `json:"allocated_to,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type HallSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Capacity *int      `json:"capacity,omitempty"`
	Status   string    `json:"status"`
}

// HallRequestView carries a nil Hall when the referenced hall no longer exists.
type HallRequestView struct {
	ID            uuid.UUID    `json:"id"`
	LecturerID    uuid.UUID    `json:"lecturer_id"`
	LecturerName  string       `json:"lecturer_name"`
	LecturerEmail string       `json:"lecturer_email"`
	HallID        uuid.UUID    `json:"hall_id"`
	Hall          *HallSummary `json:"hall,omitempty"`
	ExamTitle     string       `json:"exam_title"`
	ExamDate      *time.Time   `json:"exam_date,omitempty"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type UserView struct {
	ID                 uuid.UUID  `json:"id"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	RegistrationNumber *string    `json:"registration_number,omitempty"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}
