package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fidias-dev/technician-agenda/internal/auth"
	"github.com/fidias-dev/technician-agenda/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret-key",
		JWTIssuer:   "technician-agenda",
		JWTAudience: "technician-agenda-ui",
	}
}

func newProtectedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTProtected(cfg), func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func defaultClaims(cfg *config.Config) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":      "42",
		"username": "maria",
		"iss":      cfg.JWTIssuer,
		"aud":      cfg.JWTAudience,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Hour).Unix(),
	}
}

func TestJWTProtected(t *testing.T) {
	cfg := testAuthConfig()
	app := newProtectedApp(cfg)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{
			name:           "valid token",
			token:          signToken(t, cfg.JWTSecret, defaultClaims(cfg)),
			expectedStatus: fiber.StatusOK,
		},
		{
			name:           "missing token",
			token:          "",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			token:          "not.a.jwt",
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name:           "wrong signing key",
			token:          signToken(t, "other-secret", defaultClaims(cfg)),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "expired token",
			token: signToken(t, cfg.JWTSecret, func() jwt.MapClaims {
				claims := defaultClaims(cfg)
				claims["exp"] = time.Now().Add(-time.Hour).Unix()
				return claims
			}()),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "foreign issuer",
			token: signToken(t, cfg.JWTSecret, func() jwt.MapClaims {
				claims := defaultClaims(cfg)
				claims["iss"] = "someone-else"
				return claims
			}()),
			expectedStatus: fiber.StatusUnauthorized,
		},
		{
			name: "foreign audience",
			token: signToken(t, cfg.JWTSecret, func() jwt.MapClaims {
				claims := defaultClaims(cfg)
				claims["aud"] = "someone-else-ui"
				return claims
			}()),
			expectedStatus: fiber.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == fiber.StatusOK {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Contains(t, string(body), `"user_id":42`)
			}
		})
	}
}
