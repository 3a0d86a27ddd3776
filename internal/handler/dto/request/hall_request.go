package request

import (
	"time"

	"hall-allocation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHallRequestRequest struct {
	ExamTitle string     `json:"exam_title" binding:"required,max=200"`
	ExamDate  *time.Time `json:"exam_date"`
}

func (r *CreateHallRequestRequest) ToInput(hallID uuid.UUID) commands.CreateHallRequestInput {
	return commands.CreateHallRequestInput{
		HallID:    hallID,
		ExamTitle: r.ExamTitle,
		ExamDate:  r.ExamDate,
	}
}

type HallRequestListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}
