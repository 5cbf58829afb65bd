package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studenthub_backend/internals/constants"
)

// Read user_id from c.Locals("user_id").
// Returns 401 when not signed in, 400 when the value is malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User not signed in")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User not signed in")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User not signed in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	case []byte:
		s := strings.TrimSpace(string(t))
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User not signed in")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID in token")
	}
}

// Read the role claim from c.Locals("role"). Empty string when absent.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// IsStaff: moderator or admin.
func IsStaff(c *fiber.Ctx) bool {
	role := GetRoleFromToken(c)
	for _, r := range constants.StaffRoles {
		if role == r {
			return true
		}
	}
	return false
}
