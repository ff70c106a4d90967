// Package app implements the golnavaz commands.
package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "golnavaz",
	Short: "Golnavaz catalog API",
	Long: `Golnavaz serves the multilingual (English, Persian, Pashto) product catalog,
blog, gallery and FAQ content, and stores contact and wholesale inquiries.

Running without a subcommand starts the HTTP server.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String("host", "", "listen host (overrides SERVER_HOST)")
	rootCmd.PersistentFlags().String("port", "", "listen port (overrides SERVER_PORT)")
	_ = viper.BindPFlag("SERVER_HOST", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("SERVER_PORT", rootCmd.PersistentFlags().Lookup("port"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
