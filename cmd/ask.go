package cmd

import (
	"fmt"
	"strings"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
	"github.com/oguzhan/hoca/internal/protocol"
	"github.com/oguzhan/hoca/internal/store"
	"github.com/oguzhan/hoca/internal/tutor"
	"github.com/spf13/cobra"
)

// askCmd answers a single question without the TUI, for scripting and
// quick checks.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the tutor one question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		question := strings.Join(args, " ")

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

		svc := tutor.NewService(provider, nil, tutor.DefaultConfig())
		conv := chat.NewConversation(subject)

		reply, err := svc.Reply(cmd.Context(), conv, question, chat.Attachment{})
		if err != nil {
			return err
		}

		fmt.Println(protocol.FormatMessage(reply))
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("subject", "s", "", "Subject context for the question")
}
