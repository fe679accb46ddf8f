package repository

import (
	"context"
	"time"

	"groupbuy-service/internal/domain/user"
	"groupbuy-service/internal/infra"
	sqlc "groupbuy-service/internal/infra/sqlc/generated"
	"groupbuy-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
}

type UserRepository struct {
	queries UserQueries
}

func NewUserRepository(queries UserQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error) {
	row, err := r.queries.CreateUser(ctx, tx, sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		DisplayName:  u.DisplayName().Value(),
		Role:         u.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return row.ID, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, sqlc.UpdateUserLastLoginParams{
		LastLogin: pgconv.TimeToPgtype(at),
		ID:        userID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
