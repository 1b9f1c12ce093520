package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/JAKimball/poc-pwa-share-target/internal/app"
	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
)

const renderWidth = 80

func newLogCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Inspect, export or clear the share log",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	cmd.AddCommand(
		newLogListCmd(env),
		newLogExportCmd(env),
		newLogClearCmd(env),
	)

	return cmd
}

func newLogListCmd(env *environment) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logged shares, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := env.service.List(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeEntriesJSON(cmd.OutOrStdout(), entries)
			}

			writeEntries(cmd.OutOrStdout(), entries)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the entries as a JSON array")

	return cmd
}

func writeEntries(w io.Writer, entries []domain.LogEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No log entries.")
		return
	}

	for _, e := range entries {
		link := e.FinalURL
		if link == "" {
			link = "-"
		}

		fmt.Fprintf(w, "%s  %s  %s\n", e.Timestamp, e.FinalTitle, link)
	}
}

func writeEntriesJSON(w io.Writer, entries []domain.LogEntry) error {
	if entries == nil {
		entries = []domain.LogEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(entries)
}

func newLogExportCmd(env *environment) *cobra.Command {
	var render, send bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the share log as a note",
		Long: `Export the share log as a note named "Share Log - YYYY-MM-DD" holding
the log as a JSON code block. The note is printed, and with --send created
in the notes app.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			export, err := env.service.Export(ctx)
			if errors.Is(err, app.ErrEmptyLog) {
				fmt.Fprintln(out, "No log entries to export.")
				return nil
			}

			if err != nil {
				return err
			}

			note := export.Content
			if render {
				note, err = renderNote(export.Name, export.Content)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(out, note)

			if !send {
				return nil
			}

			if err := env.launch(ctx, export.URI); err != nil {
				return fmt.Errorf("creating note %q: %w", export.Name, err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Sent %q (%d entries)\n", export.Name, export.Entries)

			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "render the note for the terminal")
	cmd.Flags().BoolVar(&send, "send", false, "create the note in the notes app")

	return cmd
}

// renderNote renders the exported note with its name as heading.
func renderNote(name, content string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render("# " + name + "\n\n" + content + "\n")
	if err != nil {
		return "", fmt.Errorf("failed to render note: %w", err)
	}

	return out, nil
}

func newLogClearCmd(env *environment) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry from the share log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if !yes && !confirm(cmd.InOrStdin(), out, "Clear all log entries?") {
				return nil
			}

			if err := env.service.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(out, "Log cleared.")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)

	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}
