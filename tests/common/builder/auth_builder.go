//go:build unit || e2e

package builder

import (
	reqdto "groupbuy-service/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email       string
	Password    string
	DisplayName string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:       "test@example.com",
		Password:    "password123",
		DisplayName: "Tester",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:       a.Email,
		Password:    a.Password,
		DisplayName: a.DisplayName,
	}
}
