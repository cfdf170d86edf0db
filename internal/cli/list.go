package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/seuros/kigen/internal/config"
	"github.com/seuros/kigen/internal/reltime"
	"github.com/seuros/kigen/internal/tezdomains"
)

// List command flags
var (
	listFormat string
	listPages  int
)

var listCmd = &cobra.Command{
	Use:   "list [--format json|table] [--pages N]",
	Short: "Print recently expired domains",
	Long: `Fetch the expired-domains feed and print it to stdout.

The same query the web page uses: second-level names that expired five to
seven days ago, newest expiry first. --pages follows the cursor for up to
N pages (fewer when the feed runs out).

Supported formats:
  table  - Human-readable table (default)
  json   - JSON array format`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(listFormat, listPages)
	},
}

func runList(format string, pages int) error {
	if format == "" {
		format = "table"
	}
	if pages < 1 {
		pages = 1
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := tezdomains.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	domains, err := collectPages(ctx, client, pages)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputListJSON(domains)
	case "table":
		return outputListTable(domains)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

// collectPages follows the end cursor for up to maxPages fetches, appending
// results. It stops early when has_next_page turns false.
func collectPages(ctx context.Context, src tezdomains.Source, maxPages int) ([]tezdomains.Domain, error) {
	var domains []tezdomains.Domain
	after := ""

	for i := 0; i < maxPages; i++ {
		page, err := src.ExpiredPage(ctx, after)
		if err != nil {
			return nil, err
		}
		domains = append(domains, page.Domains...)

		if !page.PageInfo.HasNextPage {
			break
		}
		after = page.PageInfo.EndCursor
	}

	return domains, nil
}

func outputListJSON(domains []tezdomains.Domain) error {
	data, err := json.MarshalIndent(domains, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func outputListTable(domains []tezdomains.Domain) error {
	if len(domains) == 0 {
		fmt.Println("No expired domains in the window.")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tEXPIRED\tEXPIRES AT")
	_, _ = fmt.Fprintln(w, "----\t-------\t----------")
	for _, d := range domains {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, reltime.Since(now, d.ExpiresAt), d.ExpiresAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format: table or json")
	listCmd.Flags().IntVar(&listPages, "pages", 1, "Number of cursor pages to fetch")
}
