package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pascaretta5/tech-z-one-backend/httperr"
	"github.com/pascaretta5/tech-z-one-backend/model"
	"github.com/pascaretta5/tech-z-one-backend/validation"
)

type UserController struct {
	DB *gorm.DB
}

// userJSON is the sanitized user representation: never the password.
func userJSON(u *model.User) fiber.Map {
	return fiber.Map{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
}

func (uc *UserController) List(c *fiber.Ctx) error {
	var users []model.User
	if err := uc.DB.Find(&users).Error; err != nil {
		return httperr.Internal(c)
	}

	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		out = append(out, userJSON(&users[i]))
	}
	return c.JSON(fiber.Map{"users": out})
}

func (uc *UserController) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.BadRequest(c, "invalid id")
	}

	var user model.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(c, "User not found")
		}
		return httperr.Internal(c)
	}
	return c.JSON(fiber.Map{"user": userJSON(&user)})
}

// Update replaces name, email and password in place. The full payload is
// re-validated; partial updates are not supported.
func (uc *UserController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.BadRequest(c, "invalid id")
	}

	var user model.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(c, "User not found")
		}
		return httperr.Internal(c)
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest(c, "invalid payload")
	}
	if fields := validation.Struct(req); fields != nil {
		return httperr.Validation(c, fields)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return httperr.Internal(c)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Password = string(hashed)

	if err := uc.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict(c, "Email already registered")
		}
		return httperr.Internal(c)
	}
	return c.Status(fiber.StatusCreated).JSON(userJSON(&user))
}

// Delete removes the user and cascades to their baskets, including the
// products_basket join rows, in one transaction.
func (uc *UserController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.BadRequest(c, "invalid id")
	}

	var user model.User
	if err := uc.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(c, "User not found")
		}
		return httperr.Internal(c)
	}

	err = uc.DB.Transaction(func(tx *gorm.DB) error {
		var basketIDs []uint
		if err := tx.Model(&model.Basket{}).Where("user_id = ?", user.ID).
			Pluck("id", &basketIDs).Error; err != nil {
			return err
		}
		if len(basketIDs) > 0 {
			if err := tx.Exec("DELETE FROM products_basket WHERE basket_id IN ?", basketIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&model.Basket{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return httperr.Internal(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User successfully deleted"})
}
