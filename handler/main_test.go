package handler_test

import (
	"cafe_directory/database"
	"cafe_directory/helper"
	"cafe_directory/model"
	"cafe_directory/router"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB swaps the package-level DB handle for a sqlmock-backed gorm
// connection, so handler tests can pin down exactly which statements run.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	database.DB = gdb
	return mock
}

func testApp() *fiber.App {
	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func sessionCookie(t *testing.T, userId uint, email string) *http.Cookie {
	t.Helper()

	token, err := helper.GenerateAccessToken(model.TokenClaim{UserId: userId, Email: email})
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: token}
}

func cafeColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "slug", "name", "map_url", "img_url",
		"location", "has_sockets", "has_toilet", "has_wifi", "can_take_calls",
		"seats", "coffee_price",
	}
}

func cafeRow(rows *sqlmock.Rows, id uint, name string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, now, now, "slug-"+name, name, "https://maps.example.com/"+name,
		"https://img.example.com/"+name, "Soho", true, true, true, false, 30, 2.75,
	)
}

func userColumns() []string {
	return []string{"id", "created_at", "updated_at", "email", "password"}
}
