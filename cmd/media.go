package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
	"github.com/oguzhan/hoca/internal/media"
	"github.com/oguzhan/hoca/internal/store"
	"github.com/spf13/cobra"
)

// mediaCmd runs one generation job from the terminal: images are written
// to a file, videos are polled to completion and printed as a URI.
var mediaCmd = &cobra.Command{
	Use:   "media <image|video> <prompt>",
	Short: "Generate an image or video from a prompt",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind media.Kind
		switch args[0] {
		case "image":
			kind = media.KindImage
		case "video":
			kind = media.KindVideo
		default:
			return fmt.Errorf("unknown media kind %q (want image or video)", args[0])
		}
		prompt := strings.Join(args[1:], " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg, err := llm.ResolveConfigFromEnv()
		if err != nil {
			return fmt.Errorf("provider not configured: %w", err)
		}
		provider, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}
		resolver, err := buildResolver(cmd.Context(), cfg, provider)
		if err != nil {
			return fmt.Errorf("media generation unavailable: %w", err)
		}

		job := media.NewJob(kind, prompt)
		if kind == media.KindVideo {
			fmt.Println("Generating video, this can take a few minutes...")
		}
		msg, err := resolver.Resolve(cmd.Context(), job)
		if err != nil {
			return err
		}

		fmt.Println(msg.Body)
		switch msg.Attachment.Kind {
		case chat.AttachmentImage:
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = "hoca-" + job.ID[:8] + extensionFor(msg.Attachment.MIMEType)
			}
			if err := os.WriteFile(out, msg.Attachment.Data, 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}
			fmt.Println("Saved to", out)
		case chat.AttachmentVideo:
			fmt.Println(msg.Attachment.URI)
		}
		return nil
	},
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

func init() {
	mediaCmd.Flags().StringP("out", "o", "", "Output file for generated images")
}
