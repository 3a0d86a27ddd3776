//go:build unit || e2e

package builder

import (
	"time"

	"hall-allocation/internal/domain/hall"
	reqdto "hall-allocation/internal/handler/dto/request"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HallBuilder struct {
	ID         uuid.UUID
	Name       string
	Location   string
	Capacity   *int
	LecturerID *uuid.UUID
	ExamTitle  string
	ExamDate   *time.Time
	Now        time.Time
}

func NewHallBuilder() *HallBuilder {
	capacity := 120
	return &HallBuilder{
		ID:       uuid.New(),
		Name:     "Room A",
		Location: "Block 1, Ground Floor",
		Capacity: &capacity,
		Now:      time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *HallBuilder) With(mutate func(*HallBuilder)) *HallBuilder {
	mutate(b)
	return b
}

// BuildDomain allocates the hall when a lecturer has been set.
func (b *HallBuilder) BuildDomain() (*hall.Hall, error) {
	h, err := hall.NewHall(b.Name, b.Location, b.Capacity, b.Now)
	if err != nil {
		return nil, err
	}
	if b.LecturerID == nil {
		return h, nil
	}

	a, err := hall.NewAllocation(*b.LecturerID, b.ExamTitle, b.ExamDate, b.Now)
	if err != nil {
		return nil, err
	}
	if err := h.Allocate(a, false); err != nil {
		return nil, err
	}
	return h, nil
}

func (b *HallBuilder) BuildInfra() sqlc.Halls {
	row := sqlc.Halls{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		Status:    string(hall.StatusAvailable),
		CreatedAt: pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
	if b.Capacity != nil {
		row.Capacity = pgtype.Int4{Int32: int32(*b.Capacity), Valid: true}
	}
	if b.LecturerID != nil {
		row.Status = string(hall.StatusAllocated)
		row.AllocatedLecturerID = pgtype.UUID{Bytes: *b.LecturerID, Valid: true}
		row.AllocatedExamTitle = pgtype.Text{String: b.ExamTitle, Valid: true}
		row.AllocatedAt = pgtype.Timestamptz{Time: b.Now, Valid: true}
		if b.ExamDate != nil {
			row.AllocatedExamDate = pgtype.Timestamptz{Time: *b.ExamDate, Valid: true}
		}
	}
	return row
}

func (b *HallBuilder) BuildView() *queries.HallView {
	v := &queries.HallView{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		Capacity:  b.Capacity,
		Status:    string(hall.StatusAvailable),
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
	if b.LecturerID != nil {
		v.Status = string(hall.StatusAllocated)
		v.AllocatedTo = &queries.AllocationView{
			LecturerID:    *b.LecturerID,
			LecturerName:  "Test Lecturer",
			LecturerEmail: "test@example.com",
			ExamTitle:     b.ExamTitle,
			ExamDate:      b.ExamDate,
			AllocatedAt:   b.Now,
		}
	}
	return v
}

func (b *HallBuilder) BuildCreateDTO() reqdto.CreateHallRequest {
	return reqdto.CreateHallRequest{
		Name:     b.Name,
		Location: b.Location,
		Capacity: b.Capacity,
	}
}

// Fluent builder methods
func (b *HallBuilder) WithID(id uuid.UUID) *HallBuilder {
	b.ID = id
	return b
}

func (b *HallBuilder) WithName(name string) *HallBuilder {
	b.Name = name
	return b
}

func (b *HallBuilder) WithLocation(location string) *HallBuilder {
	b.Location = location
	return b
}

func (b *HallBuilder) WithCapacity(capacity int) *HallBuilder {
	b.Capacity = &capacity
	return b
}

func (b *HallBuilder) WithoutCapacity() *HallBuilder {
	b.Capacity = nil
	return b
}

func (b *HallBuilder) AllocatedTo(lecturerID uuid.UUID, examTitle string) *HallBuilder {
	b.LecturerID = &lecturerID
	b.ExamTitle = examTitle
	return b
}

func (b *HallBuilder) WithExamDate(date time.Time) *HallBuilder {
	b.ExamDate = &date
	return b
}
