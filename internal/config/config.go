package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	APIID     = "api_id"
	APISecret = "api_secret"
)

// InitConfig initializes the configuration
func InitConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".censys-openclaw")

	// CI injects credentials as secrets, so the env vars take precedence
	// over anything in the config file.
	viper.BindEnv(APIID, "CENSYS_API_ID")
	viper.BindEnv(APISecret, "CENSYS_API_SECRET")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// SetCredentials stores the API credentials in the configuration file
func SetCredentials(id, secret string) error {
	viper.Set(APIID, id)
	viper.Set(APISecret, secret)
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(home, ".censys-openclaw.yaml")
	return viper.WriteConfigAs(configPath)
}

// GetAPIID returns the Censys API ID from the configuration
func GetAPIID() string {
	return viper.GetString(APIID)
}

// GetAPISecret returns the Censys API secret from the configuration
func GetAPISecret() string {
	return viper.GetString(APISecret)
}

// HasCredentials reports whether both credential values are configured
func HasCredentials() bool {
	return GetAPIID() != "" && GetAPISecret() != ""
}
