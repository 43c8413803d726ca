package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"payroll_system/services"
	"payroll_system/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Role       string `json:"role"`
	EmployeeID int    `json:"employee_id,omitempty"`
	jwt.RegisteredClaims
}

var errNoSigningKey = errors.New("no token signing key configured")

// IssueToken signs an HS256 token. An empty secret is refused.
func IssueToken(secret, role string, employeeID int, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errNoSigningKey
	}
	now := time.Now()
	claims := Claims{
		Role:       role,
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func extractToken(c *fiber.Ctx) (string, error) {
	auth := c.Get("Authorization")
	if auth == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "No token provided")
	}

	parts := strings.Split(auth, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token format")
	}

	return parts[1], nil
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.APIResponse{
		Success: false,
		Error:   msg,
	})
}

// RequireAuth validates the bearer token and stores its claims under "claims".
// With an empty secret every request is rejected.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return unauthorized(c, types.ErrUnauthorizedText)
		}
		token, err := extractToken(c)
		if err != nil {
			return unauthorized(c, err.Error())
		}

		claims := &Claims{}
		_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}

func ClaimsFrom(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals("claims").(*Claims)
	return claims
}

func RequireAdmin(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	if claims == nil || claims.Role != services.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(types.APIResponse{
			Success: false,
			Error:   "Admin access required",
		})
	}
	return c.Next()
}

// RequireSelfOrAdmin lets employees reach only routes whose :id is their own.
func RequireSelfOrAdmin(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)
	if claims == nil {
		return unauthorized(c, types.ErrUnauthorizedText)
	}
	if claims.Role == services.RoleAdmin {
		return c.Next()
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || claims.Role != services.RoleEmployee || id != claims.EmployeeID {
		return c.Status(fiber.StatusForbidden).JSON(types.APIResponse{
			Success: false,
			Error:   "Access to this employee is not allowed",
		})
	}
	return c.Next()
}
