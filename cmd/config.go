package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/insightscodes/devlog/types"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".devlog"
	envPrefix  = "DEVLOG"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate caches struct info across calls.
var validate = validator.New()

// InitConfig reads in the config file and matching environment variables.
func InitConfig() {
	// A .env file may carry API keys; missing is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(envPrefix) // e.g. DEVLOG_NOTIFY_APIKEY
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
	}

	setDefaults()

	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Error unmarshalling config:", err)
		os.Exit(1)
	}
	if err := validate.Struct(&GlobalAppConfig); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		os.Exit(1)
	}
}

func setDefaults() {
	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.insightsFile", "insights.json")
	viper.SetDefault("data.archiveDir", "insights-archive")
	viper.SetDefault("data.postsDir", "posts")
	viper.SetDefault("data.rulesFile", "anonymize-rules.yaml")

	viper.SetDefault("site.url", "https://insights.codes")
	// The period the published stats cover. Fixed by the site copy.
	viper.SetDefault("site.dateRange", "Dec 31 – Feb 24")

	viper.SetDefault("notify.from", "insights.codes <hello@insights.codes>")
	viper.SetDefault("notify.dbFile", "subscribers.db")
	viper.SetDefault("notify.notifiedFile", "notified-slugs.json")

	viper.SetDefault("telemetry.enabled", false)
}

// GetConfig returns the loaded application configuration.
func GetConfig() types.AppConfig {
	return GlobalAppConfig
}
