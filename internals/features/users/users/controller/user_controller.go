// file: internals/features/users/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userdto "studenthub_backend/internals/features/users/users/dto"
	"studenthub_backend/internals/features/users/users/model"
	helper "studenthub_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// ==============================
// READ (SELF)
// ==============================

// GET /api/u/users/me
func (ctl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "User profile fetched successfully", userdto.FromModel(&user))
}

// ==============================
// READ (PUBLIC SUBSET)
// ==============================

// GET /api/u/users/:id — display info only
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return helper.JsonOK(c, "User fetched successfully", userdto.ToUserLite(&user))
}
