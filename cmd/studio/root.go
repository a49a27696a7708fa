package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Campaign Studio - AI campaign content from the terminal",
	Long: `Campaign Studio turns a product name and description into a full social
media campaign: tagline, brand story, hooks, captions, hashtags and Hindi and
Kannada captions.

By default it talks to a running campaign server; --local generates in
process with the same configuration the server uses.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
