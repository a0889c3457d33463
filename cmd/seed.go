package cmd

import (
	"fmt"

	"github.com/perchlabs/chirp/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the built-in levels and personas into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := seedCurriculum(cmd, st); err != nil {
			return err
		}

		fmt.Println("Curriculum seeded.")
		return nil
	},
}
