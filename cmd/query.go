package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yeqiyushi-eng/censys-openclaw/internal/api"
	"github.com/yeqiyushi-eng/censys-openclaw/internal/config"
)

var (
	queryPerPage int
	queryCursor  string
)

var queryCmd = &cobra.Command{
	Use:   "query [query]",
	Short: "Fetch a single page of host search results",
	Long: `Fetches one page of host search results and prints it as JSON.
Examples:
  censys-openclaw query 'host.services.service_name = "HTTP" and host.location.country = "Japan"'
  censys-openclaw query 'host.ip = "1.1.1.1"' --per-page 1`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !config.HasCredentials() {
			fmt.Fprintln(os.Stderr, "Warning: Censys API credentials are not configured. The request will be rejected.")
			fmt.Fprintln(os.Stderr, "Set CENSYS_API_ID and CENSYS_API_SECRET, or run: censys-openclaw config set-credentials <id> <secret>")
			fmt.Fprintln(os.Stderr, "")
		}
		client := api.NewClient(config.GetAPIID(), config.GetAPISecret())

		result, err := client.Search(context.Background(), args[0], queryPerPage, queryCursor, nil)
		if err != nil {
			fmt.Printf("Error querying: %v\n", err)
			return
		}

		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().IntVar(&queryPerPage, "per-page", 100, "Page size per request")
	queryCmd.Flags().StringVar(&queryCursor, "cursor", "", "Pagination cursor from a previous page")
}
