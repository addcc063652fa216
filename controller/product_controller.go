package controller

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pascaretta5/tech-z-one-backend/cache"
	"github.com/pascaretta5/tech-z-one-backend/httperr"
	"github.com/pascaretta5/tech-z-one-backend/model"
	"github.com/pascaretta5/tech-z-one-backend/validation"
)

// maxPrice bounds a decimal(10,2) column: eight integer digits.
var maxPrice = decimal.New(1, 8)

type ProductController struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

type ProductRequest struct {
	Type        model.ProductType `json:"type" validate:"-"`
	Item        string            `json:"item" validate:"required,max=100"`
	Description string            `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal   `json:"price" validate:"-"`
}

// validateProduct applies the same field-level validation discipline the
// user payload gets: tag-driven checks plus the type and price rules the
// tags cannot express.
func validateProduct(req *ProductRequest) map[string][]string {
	fields := validation.Struct(*req)
	if fields == nil {
		fields = map[string][]string{}
	}

	if req.Type == "" {
		req.Type = model.TypeOthers
	} else if !req.Type.Valid() {
		fields["type"] = append(fields["type"], "Not a valid product type.")
	}

	if req.Price.IsNegative() {
		fields["price"] = append(fields["price"], "Must be greater than or equal to 0.")
	} else if !req.Price.Abs().LessThan(maxPrice) {
		fields["price"] = append(fields["price"], "Exceeds maximum price.")
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func productJSON(p *model.Product) fiber.Map {
	return fiber.Map{
		"id":          p.ID,
		"type":        string(p.Type),
		"item":        p.Item,
		"description": p.Description,
		"price":       p.Price,
	}
}

// List is public and read-through cached when Redis is configured.
func (pc *ProductController) List(c *fiber.Ctx) error {
	ctx := c.Context()
	if body, ok := pc.Cache.GetProducts(ctx); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}

	var products []model.Product
	if err := pc.DB.Find(&products).Error; err != nil {
		return httperr.Internal(c)
	}

	out := make([]fiber.Map, 0, len(products))
	for i := range products {
		out = append(out, productJSON(&products[i]))
	}

	body, err := json.Marshal(fiber.Map{"products": out})
	if err != nil {
		return httperr.Internal(c)
	}
	pc.Cache.SetProducts(ctx, body)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

func (pc *ProductController) Create(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest(c, "invalid payload")
	}
	if fields := validateProduct(&req); fields != nil {
		return httperr.Validation(c, fields)
	}

	product := model.Product{
		Type:        req.Type,
		Item:        req.Item,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := pc.DB.Create(&product).Error; err != nil {
		return httperr.Internal(c)
	}
	pc.Cache.InvalidateProducts(c.Context())

	return c.Status(fiber.StatusCreated).JSON(productJSON(&product))
}

// Update unconditionally overwrites every field of an existing product.
func (pc *ProductController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.BadRequest(c, "invalid id")
	}

	var product model.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(c, "Product not found")
		}
		return httperr.Internal(c)
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.BadRequest(c, "invalid payload")
	}
	if fields := validateProduct(&req); fields != nil {
		return httperr.Validation(c, fields)
	}

	product.Type = req.Type
	product.Item = req.Item
	product.Description = req.Description
	product.Price = req.Price

	if err := pc.DB.Save(&product).Error; err != nil {
		return httperr.Internal(c)
	}
	pc.Cache.InvalidateProducts(c.Context())

	return c.Status(fiber.StatusCreated).JSON(productJSON(&product))
}

func (pc *ProductController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.BadRequest(c, "invalid id")
	}

	var product model.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound(c, "Product not found")
		}
		return httperr.Internal(c)
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		return httperr.Internal(c)
	}
	pc.Cache.InvalidateProducts(c.Context())

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
