package router

import (
	"cafe_directory/handler"
	"cafe_directory/middleware"
	"cafe_directory/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Use(logger.New())

	app.Get("/", handler.GetCafes)
	app.Get("/cafe/:cafeId", validate.GetById("cafeId"), handler.GetCafeById)
	app.Post("/cafe/:cafeId", middleware.OptionalAuth(), validate.GetById("cafeId"), validate.CreateComment(), handler.CreateComment)

	app.Get("/register", handler.RegisterForm)
	app.Post("/register", validate.Register(), handler.Register)
	app.Get("/login", handler.LoginForm)
	app.Post("/login", validate.Login(), handler.Login)
	app.Get("/logout", handler.Logout)

	app.Get("/add_cafe", middleware.Protected(), handler.AddCafeForm)
	app.Post("/add_cafe", middleware.Protected(), validate.CreateCafe(), handler.CreateCafe)
	app.Get("/delete/:cafeId", middleware.Protected(), validate.GetById("cafeId"), handler.DeleteCafe)

	app.Get("/about-me", handler.About)
	app.Get("/me", middleware.OptionalAuth(), handler.Me)
}
