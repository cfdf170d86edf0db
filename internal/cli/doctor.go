package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seuros/kigen/internal/config"
	"github.com/seuros/kigen/internal/tezdomains"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run health checks on Kigen installation",
	Long: `Run health checks on Kigen installation.

Checks performed:
  - Configuration loads and validates
  - GraphQL endpoint URL well-formed
  - GraphQL endpoint reachable
  - Expired-domains query answers

Example:
  kigen doctor
  kigen doctor --json`,
	RunE: runDoctor,
}

type CheckResult struct {
	Name       string `json:"name"`
	Pass       bool   `json:"pass"`
	Error      string `json:"error,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
}

func checkEndpointURL(cfg *config.Config) CheckResult {
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Host == "" {
		return CheckResult{
			Name:       "Endpoint URL",
			Pass:       false,
			Error:      fmt.Sprintf("cannot parse %q", cfg.APIURL),
			Suggestion: "Set api_url in kigen.toml or KIGEN_API_URL to a full URL",
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return CheckResult{
			Name:       "Endpoint URL",
			Pass:       false,
			Error:      fmt.Sprintf("unsupported scheme %q", u.Scheme),
			Suggestion: "Use an http:// or https:// endpoint",
		}
	}
	return CheckResult{Name: "Endpoint URL", Pass: true, Details: u.Host}
}

func checkEndpointReachable(client *tezdomains.Client) CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	if err := client.Ping(ctx); err != nil {
		return CheckResult{
			Name:       "Endpoint Reachable",
			Pass:       false,
			Error:      err.Error(),
			Suggestion: "Check network access to the GraphQL endpoint",
		}
	}
	return CheckResult{
		Name:    "Endpoint Reachable",
		Pass:    true,
		Details: fmt.Sprintf("round trip %s", time.Since(start).Round(time.Millisecond)),
	}
}

func checkFeedQuery(client *tezdomains.Client) CheckResult {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	page, err := client.ExpiredPage(ctx, "")
	if err != nil {
		return CheckResult{
			Name:       "Expired Domains Query",
			Pass:       false,
			Error:      err.Error(),
			Suggestion: "The endpoint answered but rejected the query; check the API schema version",
		}
	}
	return CheckResult{
		Name:    "Expired Domains Query",
		Pass:    true,
		Details: fmt.Sprintf("%d names in window, has_next=%t", len(page.Domains), page.PageInfo.HasNextPage),
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("✗ Configuration Error: %v\n", err)
		return err
	}

	results := []CheckResult{
		{Name: "Configuration", Pass: true, Details: fmt.Sprintf("window %d-%d days, page size %d", cfg.WindowToDays, cfg.WindowFromDays, cfg.PageSize)},
	}

	urlCheck := checkEndpointURL(cfg)
	results = append(results, urlCheck)

	if urlCheck.Pass {
		client := tezdomains.New(cfg)
		reach := checkEndpointReachable(client)
		results = append(results, reach)
		if reach.Pass {
			results = append(results, checkFeedQuery(client))
		}
	}

	// Output results
	if jsonOutput {
		outputDoctorJSON(results)
	} else {
		outputDoctorHuman(results)
	}

	// Determine exit code
	for _, r := range results {
		if !r.Pass {
			os.Exit(1)
		}
	}

	return nil
}

func outputDoctorHuman(results []CheckResult) {
	fmt.Println("\n🏥 Kigen Health Check")

	for _, r := range results {
		icon := "✓"
		if !r.Pass {
			icon = "✗"
		}

		fmt.Printf("%s %s", icon, r.Name)
		if r.Details != "" {
			fmt.Printf(" (%s)", r.Details)
		}
		fmt.Println()

		if !r.Pass {
			if r.Error != "" {
				fmt.Printf("  Error: %s\n", r.Error)
			}
			if r.Suggestion != "" {
				fmt.Printf("  💡 %s\n", r.Suggestion)
			}
		}
	}

	// Summary
	passed := 0
	for _, r := range results {
		if r.Pass {
			passed++
		}
	}

	fmt.Printf("\n%d/%d checks passed\n\n", passed, len(results))
}

func outputDoctorJSON(results []CheckResult) {
	data, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(data))
}

func init() {
	doctorCmd.Flags().Bool("json", false, "Output results as JSON")
	RootCmd.AddCommand(doctorCmd)
}
