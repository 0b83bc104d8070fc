package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// triggerCmd lets an external scheduler such as system cron run one pass.
var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Create today's rent reminders and print the summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.migrate(); err != nil {
			return err
		}

		result, err := a.reminders.TriggerReminders(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}
