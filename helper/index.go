package helper

import (
	"cafe_directory/config"
	"cafe_directory/database"
	"cafe_directory/model"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// JwtSecret signs session cookies. A stable SESSION_SECRET keeps sessions
// valid across restarts; without one every restart logs everyone out.
var JwtSecret = initSessionSecret()

func initSessionSecret() []byte {
	if s := config.Config("SESSION_SECRET"); s != "" {
		return []byte(s)
	}
	log.Println("SESSION_SECRET not set, using an ephemeral secret; sessions will not survive a restart")
	return []byte(uuid.NewString())
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetUserByEmail(e string) (*model.User, error) {
	db := database.DB
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func Valid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = tokenClaim.UserId
	claims["email"] = tokenClaim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoUserFromToken resolves the session set by the auth middleware to its
// owning user. A zero UserId means anonymous.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, model.User) {
	var emptyUser model.User
	guestClaim := model.TokenClaim{UserId: 0}

	u := c.Locals("user")
	if u == nil {
		return guestClaim, emptyUser
	}

	userToken, ok := u.(*jwt.Token)
	if !ok || userToken == nil {
		return guestClaim, emptyUser
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return guestClaim, emptyUser
	}

	userIdFloat, ok := claims["userId"].(float64)
	if !ok || userIdFloat == 0 {
		return guestClaim, emptyUser
	}

	email, _ := claims["email"].(string)

	tokenClaim := model.TokenClaim{
		UserId: uint(userIdFloat),
		Email:  email,
	}

	var user model.User
	db := database.DB
	if err := db.First(&user, tokenClaim.UserId).Error; err != nil {
		log.Printf("User not found (id=%d): %v", tokenClaim.UserId, err)
		return guestClaim, emptyUser
	}

	return tokenClaim, user
}
