package interfaces

import "hospital_billing/internal/domain/entities"

// ITokenService abstracts the session-token provider (JWT in production).
// Validate returns the request-scoped Actor the middleware hands to every
// operation.
type ITokenService interface {
	Generate(u entities.User) (string, error)
	Validate(token string) (entities.Actor, error)
}
