package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

type normalizeOptions struct {
	in      domain.ShareInput
	copy    bool
	send    bool
	jsonOut bool
}

// shareJSON is the --json output of normalize.
type shareJSON struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Markdown string `json:"markdown"`
	DailyURI string `json:"dailyUri"`
	Logged   bool   `json:"logged"`
}

func newNormalizeCmd(env *environment) *cobra.Command {
	var o normalizeOptions

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize a shared title, text and URL into a markdown link",
		Long: `Normalize a shared title, text and URL into a markdown link and record
the share in the log. The markdown is printed on stdout.`,
		Example: `  sharectl normalize --title "Cool Video - YouTube" --url https://youtu.be/x
  sharectl normalize --text "Check this https://example.com/a out" --copy --send`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNormalize(cmd, env, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.in.Title, "title", "", "shared title")
	f.StringVar(&o.in.Text, "text", "", "shared text")
	f.StringVar(&o.in.URL, "url", "", "shared URL")
	f.BoolVar(&o.copy, "copy", false, "copy the markdown to the clipboard")
	f.BoolVar(&o.send, "send", false, "append the markdown to today's daily note")
	f.BoolVar(&o.jsonOut, "json", false, "print the result as JSON")

	return cmd
}

func runNormalize(cmd *cobra.Command, env *environment, o normalizeOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	result := env.service.Share(ctx, o.in)

	if o.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		if err := enc.Encode(shareJSON{
			Title:    result.Title,
			URL:      result.URL,
			Markdown: result.Markdown,
			DailyURI: result.DailyURI,
			Logged:   result.Logged,
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, result.Markdown)
	}

	copyFirst := o.send && env.cfg.Notes.CopyBeforeSend

	// A failed copy is reported but the markdown has already been printed.
	if o.copy || copyFirst {
		if err := env.clipboard().Copy(result.Markdown); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "copy failed: %v\n", err)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
		}
	}

	if !o.send {
		return nil
	}

	if copyFirst && env.cfg.Notes.SendDelay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(env.cfg.Notes.SendDelay):
		}
	}

	if err := env.launch(ctx, result.DailyURI); err != nil {
		return fmt.Errorf("sending to daily note: %w", err)
	}

	return nil
}
