package response

import (
	"time"

	"hall-allocation/internal/usecase/commands"
	"hall-allocation/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	FullName           string     `json:"full_name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	RegistrationNumber *string    `json:"registration_number,omitempty"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return copyFrom[UserResponse](v)
}

type SignupResponse struct {
	ID uuid.UUID `json:"id"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

func FromLoginResult(r *commands.LoginResult, u *queries.UserView) (*LoginResponse, error) {
	user, err := FromUserView(u)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		User:        user,
	}, nil
}
