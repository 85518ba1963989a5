package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kaushl12/TaskCanvas/handlers"
)

// SetupRoutes wires the route table. requireAuth guards every todo route;
// signup and signin stay open.
func SetupRoutes(app *fiber.App, auth *handlers.AuthHandler, todos *handlers.TodoHandler, requireAuth fiber.Handler) {
	app.Get("/health", handlers.HandleHealthCheck)

	app.Post("/signup", auth.Signup)
	app.Post("/signin", auth.Signin)

	app.Post("/todo", requireAuth, todos.Create)
	app.Get("/todos", requireAuth, todos.List)
	app.Patch("/todo/edit/:id", requireAuth, todos.Edit)
	app.Delete("/todo/remove/:id", requireAuth, todos.Remove)
}
