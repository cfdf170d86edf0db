package cli

import (
	"github.com/spf13/cobra"
)

var (
	servePort   string
	serveAPIURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Kigen feed server",
	Long: `Start the web server that renders the expired-domains page.

Configuration is read from kigen.toml (working directory or XDG config
dir), then environment variables, then flags.

Environment variables:
  KIGEN_API_URL  Tezos Domains GraphQL endpoint (default: https://api.tezos.domains/graphql)
  PORT           Server port (default: 3000)

Example:
  PORT=8080 kigen serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveFeed(serveAPIURL, servePort)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveAPIURL, "api-url", "", "GraphQL endpoint (overrides config)")
}
