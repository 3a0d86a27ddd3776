//go:build unit || e2e

package builder

import (
	"time"

	"hall-allocation/internal/domain/user"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID                 uuid.UUID
	FullName           string
	Email              string
	PasswordHash       string
	Role               string
	RegistrationNumber *string
	Now                time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		FullName:     "Test Lecturer",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "lecturer",
		Now:          time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.FullName, email, u.PasswordHash, role, u.RegistrationNumber, u.Now)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	var regNo pgtype.Text
	if u.RegistrationNumber != nil {
		regNo = pgtype.Text{String: *u.RegistrationNumber, Valid: true}
	}

	return sqlc.Users{
		ID:                 u.ID,
		FullName:           u.FullName,
		Email:              u.Email,
		PasswordHash:       u.PasswordHash,
		Role:               u.Role,
		RegistrationNumber: regNo,
		LastLogin:          pgtype.Timestamptz{},
		CreatedAt:          pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:                 u.ID,
		FullName:           u.FullName,
		Email:              u.Email,
		Role:               u.Role,
		RegistrationNumber: u.RegistrationNumber,
		CreatedAt:          u.Now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithFullName(name string) *UserBuilder {
	u.FullName = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithRegistrationNumber(regNo string) *UserBuilder {
	u.RegistrationNumber = &regNo
	return u
}

func (u *UserBuilder) WithoutRegistrationNumber() *UserBuilder {
	u.RegistrationNumber = nil
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsStudent(regNo string) *UserBuilder {
	u.Role = "student"
	u.RegistrationNumber = &regNo
	return u
}
