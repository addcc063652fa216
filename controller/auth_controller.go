package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pascaretta5/tech-z-one-backend/httperr"
	"github.com/pascaretta5/tech-z-one-backend/middleware"
	"github.com/pascaretta5/tech-z-one-backend/model"
	"github.com/pascaretta5/tech-z-one-backend/validation"
)

const tokenTTL = 72 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user from a validated payload. The password is stored
// as a bcrypt hash only.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest(c, "invalid payload")
	}
	if fields := validation.Struct(req); fields != nil {
		return httperr.Validation(c, fields)
	}

	var existing model.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return httperr.Conflict(c, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.Internal(c)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return httperr.Internal(c)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		// Concurrent registration of the same email loses to the unique
		// index, not to the pre-check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict(c, "Email already registered")
		}
		return httperr.Internal(c)
	}

	return c.Status(fiber.StatusCreated).JSON(userJSON(&user))
}

// Login verifies credentials with a constant-time bcrypt comparison and
// issues an HS256 token carrying the user id as its subject.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest(c, "invalid payload")
	}

	var user model.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.Unauthorized(c, "Invalid credentials")
		}
		return httperr.Internal(c)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return httperr.Unauthorized(c, "Invalid credentials")
	}

	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(ac.JWTSecret))
	if err != nil {
		return httperr.Internal(c)
	}

	return c.JSON(fiber.Map{"token": signed})
}

// Me returns the identity behind the bearer token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	var user model.User
	if err := ac.DB.First(&user, middleware.UserID(c)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.Unauthorized(c, "Invalid token")
		}
		return httperr.Internal(c)
	}
	return c.JSON(userJSON(&user))
}
