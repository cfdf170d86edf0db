package cli

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seuros/kigen/internal/config"
	"github.com/seuros/kigen/internal/handlers"
	"github.com/seuros/kigen/internal/logging"
	"github.com/seuros/kigen/internal/middleware"
	"github.com/seuros/kigen/internal/tezdomains"
)

var Version string

// IndexTemplate is the embedded single page, passed from main.
var IndexTemplate []byte

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:   "kigen",
	Short: "Recently expired .tez domains, one page",
	Long: `Kigen (期限) - a single-page viewer for recently expired Tezos domains.

Kigen serves one HTML page listing second-level .tez names that expired
five to seven days ago, fetched live from the Tezos Domains GraphQL API
and loaded in cursor-paged slices as you scroll.`,
	Version: Version,
	// Default to serve command if no subcommand provided
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return serveFeed("", "")
		}
		return cmd.Help()
	},
}

// Execute is called by main
func Execute(version string, indexTemplate []byte) error {
	Version = version
	IndexTemplate = indexTemplate

	RootCmd.Version = version
	setupSelfUpgrade()

	return RootCmd.Execute()
}

// serveFeed runs the Kigen server.
func serveFeed(overrideAPIURL, overridePort string) error {
	cfg, err := config.LoadWithOverrides(overrideAPIURL, overridePort)
	if err != nil {
		return err
	}

	client := tezdomains.New(cfg)
	source := tezdomains.NewCachedSource(client, cfg.CacheTTL)

	app := newApp(cfg, source, Version, IndexTemplate)

	logging.L().Info("kigen starting",
		zap.String("port", cfg.Port),
		zap.String("api_url", cfg.APIURL))
	return app.Listen(":" + cfg.Port)
}

// newApp assembles the Fiber application. Split out so tests can drive it
// with a stubbed domain source.
func newApp(cfg *config.Config, source tezdomains.Source, version string, indexTemplate []byte) *fiber.App {
	app := fiber.New(createFiberConfig("Kigen - expired .tez domains"))

	// Middleware
	app.Use(recoverer.New())
	app.Use(logger.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(corsConfig(cfg.TrustedOrigins)))

	// Add version header to all responses
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Kigen-Version", version)
		return c.Next()
	})

	// The single page
	page := handlers.RenderIndexHTML(string(indexTemplate), version)
	app.Get("/", func(c fiber.Ctx) error {
		c.Set("Content-Type", "text/html; charset=utf-8")
		return c.SendString(page)
	})

	// Operational endpoints
	app.Get("/health", handleHealth)
	app.Get("/up", handleUp) // Docker health check
	app.Get("/api/version", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"version": version})
	})

	// Feed API backing the infinite scroll
	feed := handlers.NewDomains(source, cfg.DetailURLBase)
	app.Get("/api/domains", feed.List)

	return app
}

// corsConfig restricts browsers to the configured origins; with none
// configured the page is public and any origin may read the feed.
func corsConfig(trustedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{fiber.MethodGet, fiber.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}
	if len(trustedOrigins) == 0 {
		cfg.AllowOrigins = []string{"*"}
		return cfg
	}

	origins := make([]string, 0, 2*len(trustedOrigins))
	for _, origin := range trustedOrigins {
		origins = append(origins, "https://"+origin, "http://"+origin)
	}
	cfg.AllowOrigins = origins
	return cfg
}

// Handler functions

func handleHealth(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "kigen",
	})
}

func handleUp(c fiber.Ctx) error {
	// Docker health check. The upstream API being down does not make the
	// process unhealthy; the feed degrades to empty pages instead.
	return c.SendStatus(fiber.StatusOK)
}

func init() {
	// Add subcommands
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(listCmd)
	// doctor and healthcheck register themselves in their own init()

	// Set version output
	RootCmd.Version = Version
}
