package components

import (
	"hall-allocation/internal/pkg/clock"
	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/pkg/password"
	"hall-allocation/internal/usecase"
	"hall-allocation/internal/usecase/commands"
	"hall-allocation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) password.Hasher {
		return password.NewBcryptHasher(cfg.Auth.BcryptCost)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewHallCommands,
		commands.NewHallRequestCommands,
		commands.NewAllocationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewHallQueries,
		queries.NewHallRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
