package cmd

import (
	"fmt"
	"os"

	"github.com/yeqiyushi-eng/censys-openclaw/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "censys-openclaw",
	Short: "censys-openclaw - collect Censys host records for exposed control panels",
	Long: `censys-openclaw queries the Censys Hosts Search API for internet hosts
matching a query, writes every raw host record to a dated JSONL file,
and flattens matched HTTP endpoints into a dated CSV for analysis.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(config.InitConfig)
}
