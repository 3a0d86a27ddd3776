//go:build unit || e2e

package builder

import (
	reqdto "hall-allocation/internal/handler/dto/request"
)

type AuthBuilder struct {
	FullName           string
	Email              string
	Password           string
	Role               string
	RegistrationNumber *string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		FullName: "Test Lecturer",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "lecturer",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(password string) *AuthBuilder {
	a.Password = password
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}

func (a *AuthBuilder) WithRegistrationNumber(regNo string) *AuthBuilder {
	a.RegistrationNumber = &regNo
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		FullName:           a.FullName,
		Email:              a.Email,
		Password:           a.Password,
		Role:               a.Role,
		RegistrationNumber: a.RegistrationNumber,
	}
}
