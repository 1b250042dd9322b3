package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "boml",
	Short: "boml is a TOML 1.0.0 parsing tool.",
	Long:  "boml parses TOML documents and lets you inspect or extract values from them from the command line.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of boml",
	Long:  `All software has versions. This is boml's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("boml v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tomlCmd)
}
