//go:build unit || e2e

package builder

import (
	"time"

	"hall-allocation/internal/domain/hallrequest"
	reqdto "hall-allocation/internal/handler/dto/request"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HallRequestBuilder struct {
	ID         uuid.UUID
	LecturerID uuid.UUID
	HallID     uuid.UUID
	ExamTitle  string
	ExamDate   *time.Time
	Status     string
	Now        time.Time
}

func NewHallRequestBuilder() *HallRequestBuilder {
	return &HallRequestBuilder{
		ID:         uuid.New(),
		LecturerID: uuid.New(),
		HallID:     uuid.New(),
		ExamTitle:  "Midterm",
		Status:     string(hallrequest.StatusPending),
		Now:        time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *HallRequestBuilder) With(mutate func(*HallRequestBuilder)) *HallRequestBuilder {
	mutate(b)
	return b
}

// BuildDomain creates a pending request and moves it to Status when that is
// approved. Any other status is reconstructed directly.
func (b *HallRequestBuilder) BuildDomain() (*hallrequest.HallRequest, error) {
	switch hallrequest.Status(b.Status) {
	case hallrequest.StatusPending, hallrequest.StatusApproved:
		r, err := hallrequest.NewHallRequest(b.LecturerID, b.HallID, b.ExamTitle, b.ExamDate, b.Now)
		if err != nil {
			return nil, err
		}
		if b.Status == string(hallrequest.StatusApproved) {
			if err := r.Approve(b.Now); err != nil {
				return nil, err
			}
		}
		return r, nil
	default:
		return hallrequest.ReconstructHallRequest(b.ID, b.LecturerID, b.HallID, b.ExamTitle, b.ExamDate, b.Status, b.Now, b.Now)
	}
}

func (b *HallRequestBuilder) BuildInfra() sqlc.HallRequests {
	row := sqlc.HallRequests{
		ID:         b.ID,
		LecturerID: b.LecturerID,
		HallID:     b.HallID,
		ExamTitle:  b.ExamTitle,
		Status:     b.Status,
		CreatedAt:  pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
	if b.ExamDate != nil {
		row.ExamDate = pgtype.Timestamptz{Time: *b.ExamDate, Valid: true}
	}
	return row
}

func (b *HallRequestBuilder) BuildView() *queries.HallRequestView {
	return &queries.HallRequestView{
		ID:            b.ID,
		LecturerID:    b.LecturerID,
		LecturerName:  "Test Lecturer",
		LecturerEmail: "test@example.com",
		HallID:        b.HallID,
		Hall: &queries.HallSummary{
			ID:       b.HallID,
			Name:     "Room A",
			Location: "Block 1, Ground Floor",
			Status:   "available",
		},
		ExamTitle: b.ExamTitle,
		ExamDate:  b.ExamDate,
		Status:    b.Status,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *HallRequestBuilder) BuildDTO() reqdto.CreateHallRequestRequest {
	return reqdto.CreateHallRequestRequest{
		ExamTitle: b.ExamTitle,
		ExamDate:  b.ExamDate,
	}
}

// Fluent builder methods
func (b *HallRequestBuilder) WithID(id uuid.UUID) *HallRequestBuilder {
	b.ID = id
	return b
}

func (b *HallRequestBuilder) WithLecturerID(id uuid.UUID) *HallRequestBuilder {
	b.LecturerID = id
	return b
}

func (b *HallRequestBuilder) WithHallID(id uuid.UUID) *HallRequestBuilder {
	b.HallID = id
	return b
}

func (b *HallRequestBuilder) WithExamTitle(title string) *HallRequestBuilder {
	b.ExamTitle = title
	return b
}

func (b *HallRequestBuilder) WithExamDate(date time.Time) *HallRequestBuilder {
	b.ExamDate = &date
	return b
}

func (b *HallRequestBuilder) WithStatus(status string) *HallRequestBuilder {
	b.Status = status
	return b
}
