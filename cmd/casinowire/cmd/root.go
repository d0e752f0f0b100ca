package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "casinowire",
	Short: "Inspect casino program wire data",
	Long: `casinowire decodes the casino program's binary wire format:
instruction arguments and on-chain account state buffers.

It is a local inspection tool; fetching buffers from the chain and
submitting transactions are somebody else's job.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
