package cmd

import (
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start chatting with a bird friend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
