package handler

import (
	"cafe_directory/constants"
	"cafe_directory/database"
	"cafe_directory/helper"
	"cafe_directory/model"
	"cafe_directory/utils"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetCafes(c *fiber.Ctx) error {
	db := database.DB

	var pagination model.Pagination
	if limit := c.QueryInt("limit", 0); limit > 0 {
		pagination.Limit = utils.Ptr(limit)
	}
	if page := c.QueryInt("page", 0); page > 0 {
		pagination.Page = utils.Ptr(page)
	}

	var totalCount int64
	if err := db.Model(&model.Cafe{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var cafes model.Cafes
	query := utils.ApplyPagination(db.Model(&model.Cafe{}), pagination.Limit, pagination.Page)
	if err := query.Order("name ASC").Find(&cafes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       cafes,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetCafeById(c *fiber.Ctx) error {
	db := database.DB
	cafeId := c.Locals("inputId").(int)

	var cafe model.Cafe
	if err := db.First(&cafe, cafeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CAFE_NOT_FOUND, cafeId), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
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

func AddCafeForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"form": "add_cafe"})
}

// CreateCafe inserts the validated listing in one transaction; slug generation
// shares the transaction so a rollback leaves no trace.
func CreateCafe(c *fiber.Ctx) error {
	db := database.DB

	input, ok := c.Locals("inputCreateCafe").(model.CreateCafeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	newCafe := new(model.Cafe)
	copier.Copy(&newCafe, &input)

	tx := db.Begin()
	newCafe.Slug = helper.GenerateUniqueCafeSlug(tx, newCafe.Name)

	if err := tx.Create(&newCafe).Error; err != nil {
		tx.Rollback()
		log.Printf("error adding cafe to database: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_ADD_CAFE, nil)
	}
	if err := tx.Commit().Error; err != nil {
		log.Printf("error adding cafe to database: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_ADD_CAFE, nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newCafe)
}

// DeleteCafe removes the cafe and its comments atomically.
func DeleteCafe(c *fiber.Ctx) error {
	db := database.DB
	cafeId := c.Locals("inputId").(int)

	var cafe model.Cafe
	if err := db.First(&cafe, cafeId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CAFE_NOT_FOUND, cafeId), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()
	if err := tx.Where("cafe_id = ?", cafe.ID).Delete(&model.Comment{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := tx.Delete(&model.Cafe{}, cafe.ID).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return c.Redirect("/", fiber.StatusFound)
}

func getCafeComments(db *gorm.DB, cafeId uint) ([]model.CommentWithAuthor, error) {
	comments := []model.CommentWithAuthor{}
	err := db.Model(&model.Comment{}).
		Select("comments.id, comments.cafe_id, comments.user_id, comments.text, users.email AS author_email").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.cafe_id = ?", cafeId).
		Order("comments.id ASC").
		Scan(&comments).Error
	return comments, err
}
