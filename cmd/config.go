package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/taskman-cli/taskman/internal/config"
	"github.com/taskman-cli/taskman/types"
)

const (
	configName = ".taskman"
	envPrefix  = "TASKMAN"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// InitConfig reads in config file and ENV variables if set, then resolves
// the store location once for the remainder of the run.
func InitConfig() {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file so that env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., TASKMAN_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // data.dir -> TASKMAN_DATA_DIR

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home) // $HOME/.taskman.yaml
		}
		viper.AddConfigPath(".") // ./.taskman.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced (e.g., parsing error).
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
			os.Exit(1)
		}
		// Config file not found by search paths, which is fine.
	}

	// Set default values
	viper.SetDefault("data.dir", "")
	viper.SetDefault("data.file", config.DefaultDataFile)

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// Resolve the store directory once at startup. A missing HOME with no
	// explicit data.dir is fatal: there is nowhere to put the store.
	dir, err := config.DataDir(GlobalAppConfig.Data.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	GlobalAppConfig.Data.Dir = dir

	// Validate the populated configuration
	if err := validate.Struct(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}
