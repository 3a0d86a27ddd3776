package converter

import (
	"hall-allocation/internal/domain/hallrequest"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/pkg/pgconv"
)

func HallRequestToCreateParams(r *hallrequest.HallRequest) sqlc.CreateHallRequestParams {
	return sqlc.CreateHallRequestParams{
		ID:         r.ID(),
		LecturerID: r.LecturerID(),
		HallID:     r.HallID(),
		ExamTitle:  r.ExamTitle(),
		ExamDate:   pgconv.TimePtrToPgtype(r.ExamDate()),
		Status:     r.Status().String(),
		CreatedAt:  pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func HallRequestFromRow(row sqlc.HallRequests) (*hallrequest.HallRequest, error) {
	return hallrequest.ReconstructHallRequest(
		row.ID,
		row.LecturerID,
		row.HallID,
		row.ExamTitle,
		pgconv.TimePtrFromPgtype(row.ExamDate),
		row.Status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
