package middleware

import (
	"github.com/fidias-dev/technician-agenda/internal/config"
	"github.com/fidias-dev/technician-agenda/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			// Signature and expiry are already verified; reject tokens
			// minted for another service.
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return rejectToken(c)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return rejectToken(c)
			}
			iss, err := claims.GetIssuer()
			if err != nil || iss != cfg.JWTIssuer {
				return rejectToken(c)
			}
			aud, err := claims.GetAudience()
			if err != nil || !containsAudience(aud, cfg.JWTAudience) {
				return rejectToken(c)
			}
			return c.Next()
		},
	})
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

func rejectToken(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired token",
	})
}
