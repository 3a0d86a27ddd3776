package request

import (
	"hall-allocation/internal/usecase/commands"
)

type SignupRequest struct {
	FullName           string  `json:"full_name" binding:"required,max=200"`
	Email              string  `json:"email" binding:"required,email"`
	Password           string  `json:"password" binding:"required,min=8"`
	Role               string  `json:"role" binding:"required,oneof=admin lecturer student"`
	RegistrationNumber *string `json:"registration_number" binding:"omitempty,max=50"`
}

func (r *SignupRequest) ToInput() commands.SignupInput {
	return commands.SignupInput{
		FullName:           r.FullName,
		Email:              r.Email,
		Password:           r.Password,
		Role:               r.Role,
		RegistrationNumber: r.RegistrationNumber,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}
