package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/perchlabs/chirp/internal/store"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills [user]",
	Short: "Show a learner's accumulated skill progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := learnerFromEnv().UserID
		if len(args) == 1 {
			userID = args[0]
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		skills, err := st.ResultRepo().Skills(context.Background(), userID)
		if err != nil {
			return fmt.Errorf("list skills: %w", err)
		}

		if len(skills) == 0 {
			fmt.Printf("No skills recorded for %q yet.\n", userID)
			return nil
		}

		fmt.Printf("Skills for %s\n", userID)
		fmt.Println(strings.Repeat("─", 48))
		for _, s := range skills {
			fmt.Printf("%-24s  %5d   (updated %s)\n",
				s.SkillID, s.Value, s.UpdatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}
