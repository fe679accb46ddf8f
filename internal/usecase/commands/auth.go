package commands

import (
	"context"
	"log/slog"
	"time"

	"groupbuy-service/internal/domain/auth"
	domreview "groupbuy-service/internal/domain/review"
	"groupbuy-service/internal/domain/user"
	"groupbuy-service/internal/infra"
	"groupbuy-service/internal/pkg/clock"
	"groupbuy-service/internal/pkg/errs"
	"groupbuy-service/internal/pkg/jwt"
	"groupbuy-service/internal/pkg/password"
	"groupbuy-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserInactive    = errs.Class("user account is deactivated", errs.ErrForbidden)
	ErrEmailTaken      = errs.Class("email is already registered", errs.ErrAlreadyDone)
	ErrTokenGeneration = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresAt   time.Time
}

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

type AuthCommands interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		// malformed input gets the same answer as a wrong password
		return nil, auth.ErrInvalidCredentials
	}

	creds, err := a.uow.CommandReads().UserCredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.ComparePassword(creds.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	if !creds.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored user role")
	}
	result, err := a.issue(creds.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), creds.ID, a.clock.Now())
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to update last login", "user_id", creds.ID, "error", err.Error())
	}

	return result, nil
}

// Register creates the user together with an empty rating stats row, so a
// new member can be reviewed right away.
func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	displayName, err := user.NewDisplayName(in.DisplayName)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := a.clock.Now()
		u := user.NewUser(credentials.Email(), hash, displayName, user.RoleMember, now)
		id, derr := tx.Users().Create(ctx, tx.DB(), u)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		userID = id
		return tx.RatingStats().Create(ctx, tx.DB(), domreview.NewRatingStats(id, now))
	})
	if err != nil {
		return nil, err
	}

	return a.issue(userID, user.RoleMember)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*LoginResult, error) {
	token, expiresAt, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{UserID: userID, Role: role, AccessToken: token, ExpiresAt: expiresAt}, nil
}
