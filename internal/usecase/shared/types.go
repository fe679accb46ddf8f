package shared

import (
	"groupbuy-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrConcurrentModification = errs.Class("group buy was modified concurrently", errs.ErrInvalidState)

// UserCredentials is the write-side view needed to authenticate a user.
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}
