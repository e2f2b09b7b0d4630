package auth

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated user derived from the bearer token.
type Principal struct {
	UserID   uint
	Username string
	Email    string
	FullName string
}

// UserID extracts the authenticated user's id from the JWT stored in the
// fiber context by the auth middleware.
func UserID(c *fiber.Ctx) (uint, error) {
	p, err := PrincipalFromContext(c)
	if err != nil {
		return 0, err
	}
	return p.UserID, nil
}

// PrincipalFromContext extracts the full principal from JWT claims.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("missing sub claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, errors.New("invalid sub claim")
	}

	p := &Principal{UserID: uint(id)}
	if v, ok := claims["username"].(string); ok {
		p.Username = v
	}
	if v, ok := claims["email"].(string); ok {
		p.Email = v
	}
	if v, ok := claims["full_name"].(string); ok {
		p.FullName = v
	}
	return p, nil
}
