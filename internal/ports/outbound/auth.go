package outbound

import "github.com/google/uuid"

// TokenService issues and verifies session tokens.
type TokenService interface {
	Issue(userID uuid.UUID, email string) (string, error)
	Verify(token string) (uuid.UUID, error)
}
