package response

import (
	"time"

	"hall-allocation/internal/usecase/commands"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
)

type AllocationResponse struct {
	LecturerID    uuid.UUID  `json:"lecturer_id"`
	LecturerName  string     `json:"lecturer_name"`
	LecturerEmail string     `json:"lecturer_email"`
	ExamTitle     string     `json:"exam_title"`
	ExamDate      *time.Time `json:"exam_date,omitempty"`
	AllocatedAt   time.Time  `json:"allocated_at"`
}

type HallResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Location    string              `json:"location"`
	Capacity    *int                `json:"capacity,omitempty"`
	Status      string              `json:"status"`
	AllocatedTo *AllocationResponse `json:"allocated_to,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromHallView(v *queries.HallView) (*HallResponse, error) {
	return copyFrom[HallResponse](v)
}

func FromHallViews(vs []*queries.HallView) ([]*HallResponse, error) {
	return copySlice[HallResponse](vs)
}

type DeallocateResponse struct {
	HallID         uuid.UUID `json:"hall_id"`
	PurgedRequests int64     `json:"purged_requests"`
}

func FromDeallocateResult(r *commands.DeallocateResult) *DeallocateResponse {
	return &DeallocateResponse{HallID: r.HallID, PurgedRequests: r.PurgedRequests}
}

type ApproveResponse struct {
	RequestID  uuid.UUID `json:"request_id"`
	HallID     uuid.UUID `json:"hall_id"`
	LecturerID uuid.UUID `json:"lecturer_id"`
	Status     string    `json:"status"`
}

func FromApproveResult(r *commands.ApproveResult) *ApproveResponse {
	return &ApproveResponse{
		RequestID:  r.RequestID,
		HallID:     r.HallID,
		LecturerID: r.LecturerID,
		Status:     "approved",
	}
}
