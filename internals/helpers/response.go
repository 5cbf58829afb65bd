package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Validation errors (validator.v10) → 400 with a per-field message map
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		fieldErrors[fieldErr.Field()] = append(fieldErrors[fieldErr.Field()], fieldErr.Tag())
	}

	return JsonValidationError(c, fieldErrors)
}
