package cli

import (
	"fitviz/internal/structures"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flags structures.CliFlags

var rootCmd = &cobra.Command{
	Use:           "fitviz",
	Short:         "fitviz keeps a personal health log and serves it over HTTP",
	Long:          "fitviz stores a profile with sleep, water, meal and workout logs, derives daily health metrics, and posts reminder notifications.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "Mirror logs to stdout")
}
