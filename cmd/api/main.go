package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/fomeon/fomeon-backend/internal/cart"
	"github.com/fomeon/fomeon-backend/internal/config"
	"github.com/fomeon/fomeon-backend/internal/order"
	"github.com/fomeon/fomeon-backend/internal/restaurant"
)

// main wires dependencies and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(logger.New())

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	catalogRepo, closeDB := newCatalogRepository(cfg)
	defer closeDB()

	restaurantHandler := restaurant.NewHandler(restaurant.NewService(catalogRepo))
	restaurantHandler.RegisterPublicRoutes(app)

	cartHandler := cart.NewHandler()
	cartHandler.RegisterPublicRoutes(app)

	orderHandler := order.NewHandler(order.NewService(), order.NewHistory())
	orderHandler.RegisterPublicRoutes(app)

	// bundled frontend assets; the API works without them
	app.Static("/", "./web")

	log.Printf("API running on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// newCatalogRepository picks the catalog backing source: Postgres when
// DATABASE_URL is set, otherwise the in-memory seed data. The returned
// close func is a no-op for the in-memory source.
func newCatalogRepository(cfg config.Config) (restaurant.Repository, func()) {
	if cfg.DatabaseURL == "" {
		repo := restaurant.NewInMemoryRepository(restaurant.Seed(), restaurant.SeedMenus())
		return repo, func() {}
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	return restaurant.NewPostgresRepository(db), func() { db.Close() }
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
