package service

import (
	"github.com/golang-jwt/jwt/v5"

	"foodaid/internal/domain/entity"
)

// Claims defines the claims carried by an access token.
type Claims struct {
	ActorID int64       `json:"aid"`
	Role    entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Principal converts the claims into the principal handed to the core.
func (c *Claims) Principal() entity.Principal {
	return entity.Principal{ActorID: c.ActorID, Role: c.Role}
}

// TokenService validates bearer tokens issued by the credential service.
// Minting is exposed for tooling and tests only.
type TokenService interface {
	// GenerateAccessToken signs an access token for the actor.
	GenerateAccessToken(actorID int64, role entity.Role) (string, error)

	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
