package request

import (
	"hall-allocation/internal/usecase/commands"
)

type CreateHallRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Location string `json:"location" binding:"required,max=200"`
	Capacity *int   `json:"capacity" binding:"omitempty,min=1"`
}

func (r *CreateHallRequest) ToInput() commands.CreateHallInput {
	return commands.CreateHallInput{
		Name:     r.Name,
		Location: r.Location,
		Capacity: r.Capacity,
	}
}

// UpdateHallRequest leaves absent fields unchanged.
type UpdateHallRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Location *string `json:"location" binding:"omitempty,max=200"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}

func (r *UpdateHallRequest) ToInput() commands.UpdateHallInput {
	return commands.UpdateHallInput{
		Name:     r.Name,
		Location: r.Location,
		Capacity: r.Capacity,
	}
}

type HallListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=available allocated"`
}
