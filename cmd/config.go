package cmd

import (
	"fmt"

	"github.com/yeqiyushi-eng/censys-openclaw/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure censys-openclaw settings",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var setCredentialsCmd = &cobra.Command{
	Use:   "set-credentials [api-id] [api-secret]",
	Short: "Set the Censys API credentials",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := config.SetCredentials(args[0], args[1])
		if err != nil {
			fmt.Printf("Error setting API credentials: %v\n", err)
			return
		}
		fmt.Println("API credentials set successfully.")
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured API ID",
	Run: func(cmd *cobra.Command, args []string) {
		id := config.GetAPIID()
		if id == "" {
			fmt.Println("API credentials are not set.")
			return
		}
		fmt.Printf("Current API ID: %s\n", id)
		if config.GetAPISecret() != "" {
			fmt.Println("API secret is set.")
		} else {
			fmt.Println("API secret is not set.")
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setCredentialsCmd)
	configCmd.AddCommand(showCmd)
}
