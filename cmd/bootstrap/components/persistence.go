package components

import (
	"hall-allocation/internal/infra/readstore"
	sqlc "hall-allocation/internal/infra/sqlc/generated"
	"hall-allocation/internal/infra/uow"
	"hall-allocation/internal/usecase/queries"
	"hall-allocation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction by the unit of work, so only the
// read side and the unit of work itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hall
		func(q *sqlc.Queries) readstore.HallReadQueries { return q },
		fx.Annotate(
			readstore.NewHallReadStore,
			fx.As(new(queries.HallReadStore)),
		),
		// HallRequest
		func(q *sqlc.Queries) readstore.HallRequestReadQueries { return q },
		fx.Annotate(
			readstore.NewHallRequestReadStore,
			fx.As(new(queries.HallRequestReadStore)),
		),
		// User
		func(q *sqlc.Queries) readstore.UserReadQueries { return q },
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
