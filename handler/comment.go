package handler

import (
	"cafe_directory/constants"
	"cafe_directory/database"
	"cafe_directory/helper"
	"cafe_directory/model"
	"cafe_directory/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateComment attributes the comment to the resolved session user and
// answers with the refreshed cafe page payload.
func CreateComment(c *fiber.Ctx) error {
	db := database.DB
	cafeId := c.Locals("inputId").(int)

	input, ok := c.Locals("inputCreateComment").(model.CreateCommentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_LOGGED_IN, errors.New("anonymous comment"))
	}

	var cafe model.Cafe
	if err := db.First(&cafe, cafeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CAFE_NOT_FOUND, cafeId), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newComment := model.Comment{
		CafeId: cafe.ID,
		UserId: claim.UserId,
		Text:   input.Text,
	}
	if err := db.Create(&newComment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	comments, err := getCafeComments(db, cafe.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"cafe":     cafe,
		"comments": comments,
	})
}
