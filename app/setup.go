package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kaushl12/TaskCanvas/config"
	"github.com/kaushl12/TaskCanvas/database"
	"github.com/kaushl12/TaskCanvas/handlers"
	"github.com/kaushl12/TaskCanvas/middleware"
	"github.com/kaushl12/TaskCanvas/router"
	"github.com/kaushl12/TaskCanvas/store"
)

// SetupAndRunApp builds the whole object graph and serves until the
// listener dies. Config is read exactly once here; nothing downstream
// touches the environment.
func SetupAndRunApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.PostgresURI)
	if err != nil {
		return err
	}
	defer database.Close(db)

	users := store.NewUserStore(db)
	todos := store.NewTodoStore(db)

	secret := []byte(cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(users, secret)
	todoHandler := handlers.NewTodoHandler(todos, cfg.DisplayLocation)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app, authHandler, todoHandler, middleware.RequireAuth(secret))
	config.AddSwaggerRoutes(app)

	return app.Listen(":" + cfg.Port)
}
