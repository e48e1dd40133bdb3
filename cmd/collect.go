package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/yeqiyushi-eng/censys-openclaw/internal/api"
	"github.com/yeqiyushi-eng/censys-openclaw/internal/collect"
	"github.com/yeqiyushi-eng/censys-openclaw/internal/config"
	"github.com/yeqiyushi-eng/censys-openclaw/internal/logger"
)

const (
	defaultQuery  = `(host.services.endpoints.http.html_title:{"Moltbot Control", "clawdbot Control"}) and host.location.country = "Japan"`
	defaultTitles = "Moltbot Control,clawdbot Control"
)

var (
	collectTitles   string
	collectPerPage  int
	collectMaxPages int
	collectInterval time.Duration
	collectOutDir   string
	collectSilent   bool
)

var collectCmd = &cobra.Command{
	Use:   "collect [query]",
	Short: "Collect host records and export JSONL/CSV",
	Long: `Runs the collection pipeline: fetches every page of host records for the
query, appends each raw record to a dated JSONL file, and flattens
matched HTTP endpoints into a dated CSV next to it.
Examples:
  censys-openclaw collect
  censys-openclaw collect 'host.services.port = 3000 and host.location.country = "Japan"' --titles ''`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !config.HasCredentials() {
			color.Red("Error: Censys API credentials are not configured.")
			fmt.Fprintln(os.Stderr, "Set CENSYS_API_ID and CENSYS_API_SECRET (CI secrets), or run: censys-openclaw config set-credentials <id> <secret>")
			os.Exit(1)
		}

		query := defaultQuery
		if len(args) == 1 {
			query = args[0]
		}

		if collectSilent {
			logger.Quiet()
		}

		client := api.NewClient(config.GetAPIID(), config.GetAPISecret())
		collector := collect.New(client, collect.Options{
			Query:    query,
			Titles:   parseTitles(collectTitles),
			PerPage:  collectPerPage,
			MaxPages: collectMaxPages,
			Interval: collectInterval,
			OutDir:   collectOutDir,
		})

		var s *spinner.Spinner
		if !collectSilent {
			s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.Suffix = " Fetching host records..."
			s.Start()
			collector.OnPage = func(c collect.Counters) {
				s.Suffix = fmt.Sprintf(" Fetched %d hosts (%d pages, %d rows)...", c.Hosts, c.Pages, c.Rows)
			}
		}

		result, err := collector.Run(context.Background())
		if s != nil {
			s.Stop()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error collecting: %v\n", err)
			os.Exit(1)
		}

		if collectSilent {
			// Print just the file paths for piping/scripting usage.
			fmt.Println(result.JSONLPath)
			fmt.Println(result.CSVPath)
			return
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleColoredBright)
		t.AppendHeader(table.Row{"Pages", "Hosts", "Rows", "JSONL", "CSV"})
		t.AppendRow(table.Row{result.Pages, result.Hosts, result.Rows, result.JSONLPath, result.CSVPath})
		t.Render()
	},
}

// parseTitles splits the --titles flag; an empty flag means no title
// filtering, every HTTP endpoint makes it into the CSV.
func parseTitles(s string) []string {
	var titles []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

func init() {
	rootCmd.AddCommand(collectCmd)
	collectCmd.Flags().StringVar(&collectTitles, "titles", defaultTitles, "Comma-separated HTML titles to keep in the CSV (empty keeps every HTTP endpoint)")
	collectCmd.Flags().IntVar(&collectPerPage, "per-page", 100, "Results per page (max typically 100)")
	collectCmd.Flags().IntVar(&collectMaxPages, "max-pages", 0, "Stop after N pages (0 = unlimited)")
	collectCmd.Flags().DurationVar(&collectInterval, "interval", 200*time.Millisecond, "Pause between page fetches")
	collectCmd.Flags().StringVar(&collectOutDir, "out-dir", "out", "Output directory")
	collectCmd.Flags().BoolVar(&collectSilent, "silent", false, "Suppress progress and summary output")
}
