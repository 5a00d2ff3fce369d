package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/proffy/internal/api"
	"github.com/akyairhashvil/proffy/internal/tui"
	"github.com/akyairhashvil/proffy/internal/util"
)

// ErrNotTerminal is returned when the screen is started without a TTY.
var ErrNotTerminal = errors.New("the proffy screen needs an interactive terminal; use a subcommand for scripting")

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (a *app) runScreen(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(a.cfg.Log.File), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := tea.LogToFile(a.cfg.Log.File, "proffy")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	util.LogInfo("startup", "api=%s store=%s", a.cfg.API.BaseURL, a.db.Path())

	client := api.New(a.cfg.API.BaseURL, a.cfg.API.Timeout)
	model := tui.NewTeacherListModel(cmd.Context(), client, a.db, tui.Options{
		Theme:      a.cfg.Theme,
		ReportsDir: a.cfg.ReportsDir,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("screen stopped: %w", err)
	}
	return nil
}
