package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/perchlabs/chirp/internal/app"
	"github.com/perchlabs/chirp/internal/conversation"
	"github.com/perchlabs/chirp/internal/engine"
	"github.com/perchlabs/chirp/internal/level"
	"github.com/perchlabs/chirp/internal/llm"
	"github.com/perchlabs/chirp/internal/persona"
	"github.com/perchlabs/chirp/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// First run seeds the curriculum automatically.
	if err := seedCurriculum(cmd, st); err != nil {
		return err
	}

	opts := app.Options{
		Curriculum: st.CurriculumRepo(),
		Results:    st.ResultRepo(),
		Learner:    learnerFromEnv(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Bird friends will use simple built-in replies.")
		provider = llm.NewMockProvider()
	}
	opts.Provider = provider

	return app.Run(opts)
}

// seedCurriculum upserts the built-in levels and personas.
func seedCurriculum(cmd *cobra.Command, st *store.Store) error {
	personas, err := persona.All()
	if err != nil {
		return fmt.Errorf("load personas: %w", err)
	}
	if err := st.CurriculumRepo().Seed(cmd.Context(), level.All(), personas); err != nil {
		return fmt.Errorf("seed curriculum: %w", err)
	}
	return nil
}

// learnerFromEnv reads the learner profile from CHIRP_* env vars.
func learnerFromEnv() conversation.Params {
	p := conversation.Params{
		UserID: "friend",
		Style:  engine.StyleVerbal,
	}

	if u := os.Getenv("CHIRP_USER"); u != "" {
		p.UserID = u
	}
	if a := os.Getenv("CHIRP_AGE"); a != "" {
		if age, err := strconv.Atoi(a); err == nil {
			p.Age = age
		}
	}
	if interests := os.Getenv("CHIRP_INTERESTS"); interests != "" {
		for _, i := range strings.Split(interests, ",") {
			if i = strings.TrimSpace(i); i != "" {
				p.SpecialInterests = append(p.SpecialInterests, i)
			}
		}
	}
	switch os.Getenv("CHIRP_STYLE") {
	case "minimal":
		p.Style = engine.StyleMinimal
	case "echolalic":
		p.Style = engine.StyleEcholalic
	}

	return p
}
