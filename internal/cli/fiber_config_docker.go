//go:build docker

package cli

import "github.com/gofiber/fiber/v3"

// createFiberConfig returns Fiber configuration for Docker deployments.
// No proxy header is trusted by default; the orchestrator's network sits
// directly in front of the container.
func createFiberConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName: appName,
	}
}
