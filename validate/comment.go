package validate

import (
	"cafe_directory/constants"
	"cafe_directory/model"
	"cafe_directory/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCommentInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MISSING_COMMENT_TEXT, err, "text")
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.MISSING_COMMENT_TEXT, nil, "text")
		}

		c.Locals("inputCreateComment", input)
		return c.Next()
	}
}
