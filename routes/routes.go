package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/pascaretta5/tech-z-one-backend/cache"
	"github.com/pascaretta5/tech-z-one-backend/controller"
	"github.com/pascaretta5/tech-z-one-backend/middleware"
)

// Register wires every endpoint. Listing products and registering/logging
// in are public; everything else sits behind the bearer-token middleware.
func Register(app *fiber.App, db *gorm.DB, ch *cache.Cache, jwtSecret string) {
	auth := middleware.AuthRequired(jwtSecret)

	ac := &controller.AuthController{DB: db, JWTSecret: jwtSecret}
	uc := &controller.UserController{DB: db}
	pc := &controller.ProductController{DB: db, Cache: ch}
	bc := &controller.BasketController{DB: db}

	api := app.Group("/api")

	api.Post("/register", ac.Register)
	api.Post("/login", ac.Login)
	api.Get("/me", auth, ac.Me)

	api.Get("/users", auth, uc.List)
	api.Get("/users/:id", auth, uc.Get)
	api.Put("/users/:id", auth, uc.Update)
	api.Delete("/users/:id", auth, uc.Delete)

	api.Get("/products", pc.List)
	api.Post("/products", auth, pc.Create)
	api.Put("/products/:id", auth, pc.Update)
	api.Delete("/products/:id", auth, pc.Delete)

	api.Get("/vending", auth, bc.List)
	api.Post("/vending", auth, bc.Create)
}
