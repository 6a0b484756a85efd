package api

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hearthfire/gamemaster/pkg/utils"

	game_module "github.com/hearthfire/gamemaster/internal/api/modules/game"
	health_module "github.com/hearthfire/gamemaster/internal/api/modules/health"
)

// Start wires the HTTP surface and runs the server. It blocks until the
// server exits.
func Start(cfg *utils.Config) {
	port := cfg.GetWithDefault("PORT", "8000")

	// Add app level settings/routes
	engine := gin.Default()
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Fixed pages for the browser flow
	registerPages(engine, cfg.GetWithDefault("PAGES_DIR", "web"))

	// Adding custom modules
	health_module.RegisterRoutes(&engine.RouterGroup)

	if err := game_module.Init(cfg); err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize game module: ", err)
	}
	game_module.RegisterRoutes(engine)

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}

// registerPages serves the static HTML documents for the character creation
// and game screens
func registerPages(engine *gin.Engine, dir string) {
	engine.StaticFile("/", filepath.Join(dir, "start.html"))
	engine.StaticFile("/race", filepath.Join(dir, "race.html"))
	engine.StaticFile("/class", filepath.Join(dir, "class.html"))
	engine.StaticFile("/game", filepath.Join(dir, "game.html"))
}
