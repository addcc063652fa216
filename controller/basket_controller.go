package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pascaretta5/tech-z-one-backend/httperr"
	"github.com/pascaretta5/tech-z-one-backend/middleware"
	"github.com/pascaretta5/tech-z-one-backend/model"
)

type BasketController struct {
	DB *gorm.DB
}

type AddToBasketRequest struct {
	ProductsIDs []uint `json:"products_ids"`
}

func basketJSON(b *model.Basket) fiber.Map {
	products := make([]fiber.Map, 0, len(b.Products))
	for i := range b.Products {
		products = append(products, fiber.Map{
			"id":   b.Products[i].ID,
			"item": b.Products[i].Item,
		})
	}
	return fiber.Map{
		"id":       b.ID,
		"date":     b.Date.Format(time.RFC3339),
		"products": products,
	}
}

// List returns the calling user's baskets only.
func (bc *BasketController) List(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var baskets []model.Basket
	if err := bc.DB.Preload("Products").Where("user_id = ?", userID).
		Find(&baskets).Error; err != nil {
		return httperr.Internal(c)
	}

	out := make([]fiber.Map, 0, len(baskets))
	for i := range baskets {
		out = append(out, basketJSON(&baskets[i]))
	}
	return c.JSON(fiber.Map{"shop": out})
}

// Create builds a basket for the calling user out of the given product ids.
// Unknown ids are silently filtered; a request resolving to zero products
// is rejected rather than creating an empty basket.
func (bc *BasketController) Create(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req AddToBasketRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest(c, "invalid payload")
	}

	var products []model.Product
	if len(req.ProductsIDs) > 0 {
		if err := bc.DB.Where("id IN ?", req.ProductsIDs).Find(&products).Error; err != nil {
			return httperr.Internal(c)
		}
	}
	if len(products) == 0 {
		return httperr.BadRequest(c, "No valid products in basket")
	}

	basket := model.Basket{
		UserID:   userID,
		Products: products,
	}
	if err := bc.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&basket).Error
	}); err != nil {
		return httperr.Internal(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Successfully added to basket",
		"basket":  basketJSON(&basket),
	})
}
