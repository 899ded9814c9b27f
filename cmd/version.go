package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the taskman version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("taskman", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
