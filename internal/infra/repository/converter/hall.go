package converter

import (
	"hall-allocation/internal/domain/hall"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func HallToCreateParams(h *hall.Hall) sqlc.CreateHallParams {
	return sqlc.CreateHallParams{
		ID:        h.ID(),
		Name:      h.Name().String(),
		Location:  h.Location().String(),
		Capacity:  capacityToPgtype(h.Capacity()),
		Status:    h.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(h.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

func HallToUpdateDetailsParams(h *hall.Hall) sqlc.UpdateHallDetailsParams {
	return sqlc.UpdateHallDetailsParams{
		ID:        h.ID(),
		Name:      h.Name().String(),
		Location:  h.Location().String(),
		Capacity:  capacityToPgtype(h.Capacity()),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
	}
}

// HallToUpdateAllocationParams writes all allocation columns, clearing them
// when the hall is available.
func HallToUpdateAllocationParams(h *hall.Hall) sqlc.UpdateHallAllocationParams {
	params := sqlc.UpdateHallAllocationParams{
		ID:        h.ID(),
		Status:    h.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(h.UpdatedAt()),
	}
	if a := h.Allocation(); a != nil {
		params.AllocatedLecturerID = pgconv.UUIDToPgtype(a.LecturerID())
		params.AllocatedExamTitle = pgconv.StringToPgtype(a.ExamTitle())
		params.AllocatedExamDate = pgconv.TimePtrToPgtype(a.ExamDate())
		params.AllocatedAt = pgconv.TimeToPgtype(a.AllocatedAt())
	}
	return params
}

func HallFromRow(row sqlc.Halls) (*hall.Hall, error) {
	var alloc *hall.Allocation
	if lecturerID := pgconv.UUIDPtrFromPgtype(row.AllocatedLecturerID); lecturerID != nil {
		a, err := hall.NewAllocation(
			*lecturerID,
			row.AllocatedExamTitle.String,
			pgconv.TimePtrFromPgtype(row.AllocatedExamDate),
			pgconv.TimeFromPgtype(row.AllocatedAt),
		)
		if err != nil {
			return nil, err
		}
		alloc = &a
	}

	return hall.ReconstructHall(
		row.ID,
		row.Name,
		row.Location,
		pgconv.IntPtrFromPgtype(row.Capacity),
		row.Status,
		alloc,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func capacityToPgtype(c *hall.Capacity) pgtype.Int4 {
	if c == nil {
		return pgtype.Int4{Valid: false}
	}
	v := c.Value()
	return pgconv.IntPtrToPgtype(&v)
}
