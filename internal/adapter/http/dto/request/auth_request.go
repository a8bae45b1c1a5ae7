package request

import (
	"strings"

	"hospital_billing/internal/domain/entities"
	"hospital_billing/internal/usecase"
)

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (r SignupRequest) ToInput() usecase.SignupInput {
	return usecase.SignupInput{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
		Role:     entities.Role(strings.ToLower(strings.TrimSpace(r.Role))),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
