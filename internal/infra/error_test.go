//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"hall-allocation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name           string
		err            error
		override       []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{
			name:     "no rows is not found",
			err:      pgx.ErrNoRows,
			wantKind: infra.KindNotFound,
		},
		{
			name:           "unique violation is duplicate key",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "halls_name_key"},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: "halls_name_key",
		},
		{
			name:           "foreign key violation",
			err:            fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503", ConstraintName: "hall_requests_lecturer_id_fkey"}),
			wantKind:       infra.KindForeignKeyViolated,
			wantConstraint: "hall_requests_lecturer_id_fkey",
		},
		{
			name:     "anything else is a db failure",
			err:      errors.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "explicit kind wins",
			err:      errors.New("zero rows affected"),
			override: []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.override...)

			assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			assert.Equal(t, tc.wantConstraint, infra.ConstraintOf(err))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
