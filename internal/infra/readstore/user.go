package readstore

import (
	"context"

	"hall-allocation/internal/infra"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/pkg/pgconv"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toUserView(row), row.PasswordHash, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:                 row.ID,
		FullName:           row.FullName,
		Email:              row.Email,
		Role:               row.Role,
		RegistrationNumber: pgconv.StringPtrFromPgtype(row.RegistrationNumber),
		LastLogin:          pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
