/*
Copyright (c) 2024 sh4869221b <sh4869221b@gmail.com>
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ft-tqdm [items...]",
	Short: "iterate over items while drawing a tqdm-style progress bar",
	Args:  cobra.ArbitraryArgs,
	RunE:  runRootCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the provided context.
func ExecuteContext(ctx context.Context) {
	rootCmd.Version = Version
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}
