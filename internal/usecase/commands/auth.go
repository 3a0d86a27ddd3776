package commands

import (
	"context"
	"log/slog"
	"time"

	"hall-allocation/internal/domain/auth"
	"hall-allocation/internal/domain/user"
	"hall-allocation/internal/infra"
	"hall-allocation/internal/pkg/clock"
	"hall-allocation/internal/pkg/config"
	"hall-allocation/internal/pkg/errs"
	"hall-allocation/internal/pkg/jwt"
	"hall-allocation/internal/pkg/password"
	"hall-allocation/internal/usecase/queries"
	"hall-allocation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials  = errs.New("invalid email or password")
	ErrTokenGeneration     = errs.New("token generation failed")
	ErrAdminSignupDisabled = errs.NewKind(errs.ErrAuthorization, "admin accounts cannot be self-registered")
)

type SignupInput struct {
	FullName           string
	Email              string
	Password           string
	Role               string
	RegistrationNumber *string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (uuid.UUID, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow              shared.UnitOfWork
	readStore        queries.UserReadStore
	jwtService       *jwt.Service
	hasher           password.Hasher
	clock            clock.Clock
	allowAdminSignup bool
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	hasher password.Hasher,
	clk clock.Clock,
	cfg config.Config,
) AuthCommands {
	return &authCommandsImpl{
		uow:              uow,
		readStore:        readStore,
		jwtService:       jwtService,
		hasher:           hasher,
		clock:            clk,
		allowAdminSignup: cfg.Auth.AllowAdminSignup,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (uuid.UUID, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, err
	}
	if role == user.RoleAdmin && !a.allowAdminSignup {
		return uuid.Nil, ErrAdminSignupDisabled
	}

	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	u, err := user.NewUser(in.FullName, credentials.Email(), hash, role, in.RegistrationNumber, a.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cerr := tx.Users().Create(ctx, tx.DB(), u)
		if infra.IsKind(cerr, infra.KindDuplicateKey) {
			return user.ErrEmailTaken
		}
		return cerr
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.InfoContext(ctx, "user signed up", "user_id", u.ID(), "role", role.String())
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err = a.hasher.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user has an unknown role")
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// login already succeeded
		slog.WarnContext(ctx, "failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      view.ID,
		Role:        role,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
