package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a group buy member account. Organizer and participant are roles
// within a group buy, not account roles.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	displayName  DisplayName
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, displayName DisplayName, role Role, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func (u *User) ID() uuid.UUID            { return u.id }
func (u *User) Email() Email             { return u.email }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) Role() Role               { return u.role }
func (u *User) LastLogin() *time.Time    { return u.lastLogin }
func (u *User) IsActive() bool           { return u.isActive }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

func (u *User) Deactivate(now time.Time) {
	u.isActive = false
	u.updatedAt = now
}
