package cmd

import (
	"fmt"

	"github.com/oguzhan/hoca/internal/llm"
	"github.com/oguzhan/hoca/internal/protocol"
	"github.com/oguzhan/hoca/internal/quiz"
	"github.com/oguzhan/hoca/internal/store"
	"github.com/spf13/cobra"
)

// quizCmd fetches a quiz batch and prints it without the TUI. Useful for
// inspecting what the model actually produces for a subject.
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Fetch a batch of quiz questions and print them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		marathon, _ := cmd.Flags().GetBool("marathon")

		mode := quiz.ModeShort
		if marathon {
			mode = quiz.ModeMarathon
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("provider not configured: %w", err)
		}

		engine := quiz.NewEngine(provider, quiz.DefaultConfig())
		items, err := engine.Fetch(cmd.Context(), mode, subject)
		if err != nil {
			return fmt.Errorf("fetch quiz batch: %w", err)
		}
		if len(items) == 0 {
			return fmt.Errorf("no usable questions in the batch")
		}

		for i, item := range items {
			if i > 0 {
				fmt.Println("---")
			}
			fmt.Println(protocol.FormatMessage(item))
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().StringP("subject", "s", "", "Subject to quiz on (default: mixed)")
	quizCmd.Flags().BoolP("marathon", "m", false, "Fetch a marathon-sized batch")
}
