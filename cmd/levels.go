package cmd

import (
	"fmt"
	"strings"

	"github.com/perchlabs/chirp/internal/level"
	"github.com/perchlabs/chirp/internal/persona"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the conversation practice levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-3s  %-24s  %-20s  %s\n", "#", "Level", "Host", "Objectives")
		fmt.Println(strings.Repeat("─", 90))

		for _, l := range level.All() {
			host := l.PersonaID
			if p, err := persona.Get(l.PersonaID); err == nil {
				host = fmt.Sprintf("%s %s", p.Emoji, p.Name)
			}
			fmt.Printf("%-3d  %-24s  %-20s  %s\n",
				l.Order, l.Name, host, strings.Join(l.Objectives, "; "))
		}
		return nil
	},
}
