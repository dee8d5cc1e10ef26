package routes

import (
	"FindNest/domain"
	"FindNest/internal/api/handlers"
	"FindNest/internal/middleware"
	"FindNest/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	ItemHandler handlers.ItemHandler
	UserHandler handlers.UserHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.User()
	c.Items()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/signup", c.UserHandler.Register)
		auth.Post("/signin", c.UserHandler.Login)
	}
}

func (c *Config) User() {
	authenticated := c.Middleware.AuthMiddleware(c.JWTService)
	adminOnly := c.Middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin)

	user := c.App.Group("/api/user")
	{
		user.Post("/create", c.UserHandler.Register)
		user.Post("/signout", c.UserHandler.Signout)
		user.Put("/update-user/:userId", authenticated, c.UserHandler.UpdateUser)
		user.Delete("/delete-user/:userId", authenticated, c.UserHandler.DeleteUser)

		// administration
		user.Get("/getUsers", authenticated, adminOnly, c.UserHandler.GetUsers)
		user.Put("/admin-update/:userId", authenticated, adminOnly, c.UserHandler.AdminUpdateUser)
		user.Delete("/admin-delete/:userId", authenticated, adminOnly, c.UserHandler.AdminDeleteUser)
	}
}

func (c *Config) Items() {
	authenticated := c.Middleware.AuthMiddleware(c.JWTService)

	items := c.App.Group("/api/items")
	{
		items.Get("/getItems", c.ItemHandler.GetItems)
		items.Post("/report", authenticated, c.ItemHandler.ReportItem)
		items.Post("/upload-image", authenticated, c.ItemHandler.UploadItemImage)
		items.Get("/stats", authenticated, c.ItemHandler.GetDashboardStats)
		items.Post("/claim/:itemId", authenticated, c.ItemHandler.ClaimItem)
		items.Get("/:id", authenticated, c.ItemHandler.GetItemDetails)
		items.Put("/:id", authenticated, c.ItemHandler.UpdateItem)
		items.Delete("/:id", authenticated, c.ItemHandler.DeleteItem)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
