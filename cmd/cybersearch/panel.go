package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/enotkrutoy/CyberSearch/internal/browser"
	"github.com/enotkrutoy/CyberSearch/internal/domain/vector"
	logpkg "github.com/enotkrutoy/CyberSearch/internal/logger"
	"github.com/enotkrutoy/CyberSearch/internal/tui"
	"github.com/enotkrutoy/CyberSearch/internal/usecase/generate"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Start the interactive full-screen panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPanel()
	},
}

func runPanel() error {
	// The panel owns stdout, so logs divert to a file.
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = filepath.Join(os.TempDir(), "cybersearch-panel.log")
	}
	logger, err := logpkg.NewLogger("json", cfg.Logging.Level, logFile)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prof, err := cfg.Profile(cfg.Frontends.Panel)
	if err != nil {
		return err
	}
	defaults := vector.NewParams(prof.Vectors, prof.Density, prof.Page)

	svc := generate.NewInstrumented(generate.New(), logger)
	launcher := browser.New(cfg.Browser.Command, cfg.Browser.Disabled)

	p := tea.NewProgram(tui.New(svc, launcher, defaults), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("panel: %w", err)
	}
	return nil
}
