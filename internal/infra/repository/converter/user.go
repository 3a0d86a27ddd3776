package converter

import (
	"hall-allocation/internal/domain/user"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:                 u.ID(),
		FullName:           u.FullName(),
		Email:              u.Email().Value(),
		PasswordHash:       u.PasswordHash(),
		Role:               u.Role().String(),
		RegistrationNumber: pgconv.StringPtrToPgtype(u.RegistrationNumber()),
		CreatedAt:          pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
