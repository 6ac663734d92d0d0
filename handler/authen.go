package handler

import (
	"cafe_directory/constants"
	"cafe_directory/database"
	"cafe_directory/helper"
	"cafe_directory/model"
	"cafe_directory/utils"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func RegisterForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"form": "register"})
}

// Register creates the account and logs it straight in. A taken email answers
// 200 with a flash so the form re-renders inline.
func Register(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputRegister").(model.RegisterUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.FlashResponse(c, constants.EMAIL_EXISTS)
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	newUser := new(model.User)
	copier.Copy(&newUser, &input)
	newUser.Password = hash

	if err := db.Create(&newUser).Error; err != nil {
		// unique index still wins when two registrations race
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.FlashResponse(c, constants.EMAIL_EXISTS)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return issueSession(c, newUser)
}

func LoginForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"form": "login"})
}

func Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	userModel, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if userModel == nil {
		return utils.FlashResponse(c, constants.USER_NOT_FOUND)
	}

	if !helper.CheckPasswordHash(input.Password, userModel.Password) {
		return utils.FlashResponse(c, constants.INVALID_PASSWORD)
	}

	return issueSession(c, userModel)
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.Redirect("/", fiber.StatusFound)
}

func Me(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return c.JSON(fiber.Map{"user": nil})
	}
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func issueSession(c *fiber.Ctx, user *model.User) error {
	token, err := helper.GenerateAccessToken(model.TokenClaim{
		UserId: user.ID,
		Email:  user.Email,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}
