package cmd

import (
	"fmt"
	"io"
	"log"

	"nomi/src/catalog"
	"nomi/src/clipboard"
	"nomi/src/config"
	"nomi/src/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runForm opens the interactive form when no subcommand is specified
func runForm(cmd *cobra.Command, args []string) error {
	settings, err := GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// The form owns the terminal, so diagnostics go to a log file
	if logPath, err := config.GetLogFile(); err == nil {
		f, err := tea.LogToFile(logPath, "nomi")
		if err == nil {
			defer f.Close()
		} else {
			log.SetOutput(io.Discard)
		}
	} else {
		log.SetOutput(io.Discard)
	}

	exporter := newExporter(settings)
	model := tui.New(catalog.Default(), exporter, tui.Options{
		Dark:         settings.Theme.Dark,
		StrictExpiry: settings.Feedback.Strict,
	})

	log.Printf("Starting form (dark=%t clipboard=%t delay=%s)",
		settings.Theme.Dark, settings.Clipboard.Enabled, settings.Feedback.Delay)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form exited with error: %w", err)
	}
	return nil
}

func newExporter(settings *config.Settings) *clipboard.Exporter {
	var w clipboard.Writer = clipboard.SystemWriter{}
	if !settings.Clipboard.Enabled {
		w = clipboard.DisabledWriter{}
	}
	return clipboard.NewExporter(w, clipboard.WithFeedbackDelay(settings.Feedback.Delay))
}
