package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id                 uuid.UUID
	fullName           string
	email              Email
	passwordHash       string
	role               Role
	registrationNumber *string
	lastLogin          *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewUser validates a signup. Students must carry a registration number;
// for other roles it is dropped.
func NewUser(fullName string, email Email, passwordHash string, role Role, registrationNumber *string, now time.Time) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrFullNameRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	var regNo *string
	if role == RoleStudent {
		if registrationNumber == nil || strings.TrimSpace(*registrationNumber) == "" {
			return nil, ErrRegistrationNumberRequired
		}
		v := strings.TrimSpace(*registrationNumber)
		regNo = &v
	}

	return &User{
		id:                 uuid.New(),
		fullName:           fullName,
		email:              email,
		passwordHash:       passwordHash,
		role:               role,
		registrationNumber: regNo,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) FullName() string            { return u.fullName }
func (u *User) Email() Email                { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() Role                  { return u.role }
func (u *User) RegistrationNumber() *string { return u.registrationNumber }
func (u *User) LastLogin() *time.Time       { return u.lastLogin }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
