package response

import (
	"time"

	"groupbuy-service/internal/usecase/queries"
)

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
}

func FromUserView(v *queries.AuthorizedUserView) (*UserResponse, error) {
	var res UserResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      string    `json:"userId"`
	Role        string    `json:"role"`
}
