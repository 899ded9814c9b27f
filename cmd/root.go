package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taskman-cli/taskman/internal/config"
	"github.com/taskman-cli/taskman/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskman",
	Short: "taskman keeps your personal task list in a plain text file.",
	Long: `taskman is a small command line task tracker.

Tasks live one per line in a plain text file under your home directory,
so the store stays greppable and trivial to back up. Add tasks, list
them, mark them done or pending again, and delete the ones you no
longer need.`,
	Run: func(cmd *cobra.Command, args []string) {
		// A bare invocation is a usage error.
		_ = cmd.Help()
		os.Exit(1)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.taskman.yaml or ./.taskman.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetTaskFilePath returns the full path to the tasks file.
func GetTaskFilePath() string {
	return filepath.Join(GlobalAppConfig.Data.Dir, GlobalAppConfig.Data.File)
}

// GetStore bootstraps the data directory and returns the task store with
// the resolved file path injected at construction.
func GetStore() (store.TaskStore, error) {
	if err := config.EnsureDataDir(afero.NewOsFs(), GlobalAppConfig.Data.Dir); err != nil {
		return nil, err
	}
	return store.NewLineTaskStore(GetTaskFilePath()), nil
}
