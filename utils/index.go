package utils

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ErrorResponseHaveKey(c *fiber.Ctx, status int, message string, err error, keyError string) error {
	var errMsg string
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":   "error",
		"message":  message,
		"errors":   errMsg,
		"keyError": keyError,
	})
}

// FlashResponse answers 200 with a flash message only, the way the form pages
// re-render with an inline notice instead of failing the request.
func FlashResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"flash": message,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

var truthyTokens = map[string]bool{"1": true, "yes": true, "true": true, "on": true}
var falsyTokens = map[string]bool{"0": true, "no": true, "false": true, "off": true}

// ParseBoolToken coerces a raw form value into a bool. Only the canonical
// truthy/falsy tokens are accepted, anything else is a parse error.
func ParseBoolToken(raw string) (bool, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if truthyTokens[token] {
		return true, nil
	}
	if falsyTokens[token] {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean token %q", raw)
}

func GetFirstValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
