package handler

import (
	"cafe_directory/utils"

	"github.com/gofiber/fiber/v2"
)

func About(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"title": "About me",
		"body":  "A community directory of work-friendly cafes: sockets, wifi, toilets and whether you can take a call.",
	})
}
