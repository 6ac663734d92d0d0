package validate

import (
	"cafe_directory/constants"
	"cafe_directory/model"
	"cafe_directory/utils"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateCafe parses and coerces the add-cafe form. Any missing field or bad
// token aborts here, so the handler never sees a partial cafe. The client only
// gets the generic add-cafe message; the cause goes to the server log.
func CreateCafe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var raw model.CreateCafeRawInput
		if err := c.BodyParser(&raw); err != nil {
			log.Printf("add cafe: cannot parse form: %v", err)
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_ADD_CAFE, nil)
		}

		if err := validate.Struct(raw); err != nil {
			log.Printf("add cafe: missing fields: %v", err)
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_ADD_CAFE, nil)
		}

		input := model.CreateCafeInput{
			Name:     strings.TrimSpace(raw.Name),
			MapUrl:   raw.MapUrl,
			ImgUrl:   raw.ImgUrl,
			Location: raw.Location,
		}

		var err error
		if input.HasSockets, err = utils.ParseBoolToken(raw.HasSockets); err != nil {
			return coercionError(c, "hasSockets", err)
		}
		if input.HasToilet, err = utils.ParseBoolToken(raw.HasToilet); err != nil {
			return coercionError(c, "hasToilet", err)
		}
		if input.HasWifi, err = utils.ParseBoolToken(raw.HasWifi); err != nil {
			return coercionError(c, "hasWifi", err)
		}
		if input.CanTakeCalls, err = utils.ParseBoolToken(raw.CanTakeCalls); err != nil {
			return coercionError(c, "canTakeCalls", err)
		}
		if input.Seats, err = strconv.Atoi(strings.TrimSpace(raw.Seats)); err != nil {
			return coercionError(c, "seats", err)
		}
		if input.CoffeePrice, err = strconv.ParseFloat(strings.TrimSpace(raw.CoffeePrice), 64); err != nil {
			return coercionError(c, "coffeePrice", err)
		}

		c.Locals("inputCreateCafe", input)
		return c.Next()
	}
}

func coercionError(c *fiber.Ctx, field string, err error) error {
	log.Printf("add cafe: bad %s value: %v", field, err)
	return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ERROR_ADD_CAFE, nil, field)
}
