package cmd

import (
	"github.com/spf13/cobra"
)

var settingsPath string

var rootCmd = &cobra.Command{
	Use:   "rent-reminder",
	Short: "Rent reminder service",
	Long:  "Tracks tenant leases and creates rent reminders for leases that end soon.",
	// serve is the default when no subcommand is given
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "./settings",
		"directory holding appsettings.yaml")
	rootCmd.AddCommand(serveCmd, migrateCmd, triggerCmd)
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}
