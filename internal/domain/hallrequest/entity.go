package hallrequest

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxExamTitleLength = 200

type HallRequest struct {
	id         uuid.UUID
	lecturerID uuid.UUID
	hallID     uuid.UUID
	examTitle  string
	examDate   *time.Time
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

// NewHallRequest records a pending request. The hall is referenced by id only;
// whether it exists or is free is not checked here.
func NewHallRequest(lecturerID, hallID uuid.UUID, examTitle string, examDate *time.Time, now time.Time) (*HallRequest, error) {
	if lecturerID == uuid.Nil {
		return nil, ErrLecturerRequired
	}
	if hallID == uuid.Nil {
		return nil, ErrHallRequired
	}
	title, err := normalizeExamTitle(examTitle)
	if err != nil {
		return nil, err
	}

	return &HallRequest{
		id:         uuid.New(),
		lecturerID: lecturerID,
		hallID:     hallID,
		examTitle:  title,
		examDate:   examDate,
		status:     StatusPending,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructHallRequest(
	id, lecturerID, hallID uuid.UUID,
	examTitle string,
	examDate *time.Time,
	status string,
	createdAt, updatedAt time.Time,
) (*HallRequest, error) {
	st, err := NewStatus(status)
	if err != nil {
		return nil, err
	}
	return &HallRequest{
		id:         id,
		lecturerID: lecturerID,
		hallID:     hallID,
		examTitle:  examTitle,
		examDate:   examDate,
		status:     st,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// Approve moves a pending request to approved.
func (r *HallRequest) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusApproved
	r.updatedAt = now
	return nil
}

func (r *HallRequest) IsOwnedBy(lecturerID uuid.UUID) bool {
	return r.lecturerID == lecturerID
}

func normalizeExamTitle(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrExamTitleRequired
	}
	if len([]rune(t)) > MaxExamTitleLength {
		return "", ErrExamTitleTooLong
	}
	return t, nil
}

func (r *HallRequest) ID() uuid.UUID         { return r.id }
func (r *HallRequest) LecturerID() uuid.UUID { return r.lecturerID }
func (r *HallRequest) HallID() uuid.UUID     { return r.hallID }
func (r *HallRequest) ExamTitle() string     { return r.examTitle }
func (r *HallRequest) ExamDate() *time.Time  { return r.examDate }
func (r *HallRequest) Status() Status        { return r.status }
func (r *HallRequest) CreatedAt() time.Time  { return r.createdAt }
func (r *HallRequest) UpdatedAt() time.Time  { return r.updatedAt }
