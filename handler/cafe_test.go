package handler_test

import (
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCafesOrderedByName(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "cafes"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	rows := sqlmock.NewRows(cafeColumns())
	rows = cafeRow(rows, 1, "Ace Hotel Shoreditch")
	rows = cafeRow(rows, 2, "Goswell Road Coffee")
	mock.ExpectQuery(`SELECT \* FROM "cafes" ORDER BY name`).
		WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Ace Hotel Shoreditch")
	assert.Contains(t, string(body), "Goswell Road Coffee")
	assert.Contains(t, string(body), `"totalCount":2`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCafeByIdNotFound(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	mock.ExpectQuery(`SELECT \* FROM "cafes"`).
		WillReturnRows(sqlmock.NewRows(cafeColumns()))

	resp, err := app.Test(httptest.NewRequest("GET", "/cafe/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No cafe with id 42 found!")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCafeByIdWithComments(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	mock.ExpectQuery(`SELECT \* FROM "cafes"`).
		WillReturnRows(cafeRow(sqlmock.NewRows(cafeColumns()), 1, "Science Gallery London"))
	mock.ExpectQuery(`SELECT comments\.id, .* FROM "comments" JOIN users`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cafe_id", "user_id", "text", "author_email"}).
			AddRow(1, 1, 2, "Great coffee", "a@x.com"))

	resp, err := app.Test(httptest.NewRequest("GET", "/cafe/1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Science Gallery London")
	assert.Contains(t, string(body), "Great coffee")
	assert.Contains(t, string(body), `"authorEmail":"a@x.com"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCafeRequiresAuth(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	req := httptest.NewRequest("POST", "/add_cafe", strings.NewReader("cafeName=X"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCafeWritesSingleRow(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cafes" WHERE slug`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "cafes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	form := url.Values{}
	form.Set("cafeName", "Test Cafe")
	form.Set("mapUrl", "https://maps.example.com/test")
	form.Set("imgUrl", "https://img.example.com/test.jpg")
	form.Set("location", "Soho")
	form.Set("hasSockets", "yes")
	form.Set("hasToilet", "no")
	form.Set("hasWifi", "true")
	form.Set("canTakeCalls", "off")
	form.Set("seats", "30")
	form.Set("coffeePrice", "2.75")

	req := httptest.NewRequest("POST", "/add_cafe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie(t, 1, "a@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"hasSockets":true`)
	assert.Contains(t, string(body), `"canTakeCalls":false`)
	assert.Contains(t, string(body), `"slug":"test-cafe"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCafeBadTokenWritesNothing(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	form := url.Values{}
	form.Set("cafeName", "Test Cafe")
	form.Set("mapUrl", "https://maps.example.com/test")
	form.Set("imgUrl", "https://img.example.com/test.jpg")
	form.Set("location", "Soho")
	form.Set("hasSockets", "maybe")
	form.Set("hasToilet", "no")
	form.Set("hasWifi", "true")
	form.Set("canTakeCalls", "off")
	form.Set("seats", "30")
	form.Set("coffeePrice", "2.75")

	req := httptest.NewRequest("POST", "/add_cafe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(sessionCookie(t, 1, "a@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Error adding cafe to database")
	// zero statements expected: nothing may reach the store
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCafeRequiresAuth(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/delete/1", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCafeCascadesComments(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	mock.ExpectQuery(`SELECT \* FROM "cafes"`).
		WillReturnRows(cafeRow(sqlmock.NewRows(cafeColumns()), 1, "Science Gallery London"))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "comments"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "cafes"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("GET", "/delete/1", nil)
	req.AddCookie(sessionCookie(t, 1, "a@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCafeUnknownIdLeavesStoreUnchanged(t *testing.T) {
	mock := setupMockDB(t)
	app := testApp()

	mock.ExpectQuery(`SELECT \* FROM "cafes"`).
		WillReturnRows(sqlmock.NewRows(cafeColumns()))

	req := httptest.NewRequest("GET", "/delete/99", nil)
	req.AddCookie(sessionCookie(t, 1, "a@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No cafe with id 99 found!")
	require.NoError(t, mock.ExpectationsWereMet())
}
