package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/proffy/internal/config"
	"github.com/akyairhashvil/proffy/internal/database"
)

// Build metadata, set with -ldflags at release time.
var (
	AppVersion = "dev"
	GitCommit  = "none"
	BuildTime  = "unknown"
)

// app carries the flags and the resources opened for one invocation.
type app struct {
	cfgFile string
	apiURL  string
	dbPath  string
	logFile string

	cfg *config.Config
	db  *database.Database
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Find tutors and keep track of your favorites",
		Long: `Proffy lists the tutors available on the classes backend, filtered by
subject, week day and time, and marks the ones saved in your favorites.

Run without a subcommand to open the interactive screen.`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", AppVersion, GitCommit, BuildTime),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: a.runScreen,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/proffy/config.yaml)")
	flags.StringVar(&a.apiURL, "api-url", "", "base URL of the classes backend")
	flags.StringVar(&a.dbPath, "db", "", "path of the local favorites store")
	flags.StringVar(&a.logFile, "log-file", "", "log file written while the screen runs")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newFavoritesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return config.GetConfigPath()
}

// setup loads the configuration and, for commands that need it, opens the
// local store.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	// Skip loading for init so a broken file can be replaced.
	if cmd.Name() == "init" {
		return nil
	}

	cfg, err := config.LoadOrDefault(a.configPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.apiURL != "" {
		cfg.API.BaseURL = a.apiURL
	}
	if a.dbPath != "" {
		cfg.Storage.Path = a.dbPath
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	// Config management works without the store.
	if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
		return nil
	}
	if cmd == cmd.Root() && !isTerminal() {
		return ErrNotTerminal
	}
	return a.openStore(cmd.Context())
}

func (a *app) openStore(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := os.MkdirAll(filepath.Dir(a.cfg.Storage.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := database.Open(ctx, a.cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	a.db = db
	return nil
}

func (a *app) teardown() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
