package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zyphonz/ember/cmd/ember/term"
	"github.com/zyphonz/ember/internal/auth"
	"github.com/zyphonz/ember/internal/config"
	"github.com/zyphonz/ember/internal/logging"
	"github.com/zyphonz/ember/internal/store"
)

var (
	// Global flags
	verbose    bool
	configPath string
	binID      string
	masterKey  string

	// Logger for the non-interactive subcommands. The TUI writes to
	// category files instead, since it owns the terminal.
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "EMBER - Application Store Terminal",
	Long: `EMBER is a terminal interface for a small application store.

The catalog lives in a remote JSON document; browsing is open to everyone
and mutations sit behind a developer login.

Run without arguments to start the interactive terminal.`,
	Version: "0.1.0-indev",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive terminal has its own UI and logging.
		if cmd.Use == "ember" && cmd.CalledAs() == "ember" {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTerminal()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.ember/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&binID, "bin", "", "JSONBin bin id (overrides config)")
	rootCmd.PersistentFlags().StringVar(&masterKey, "master-key", "", "JSONBin master key (overrides config)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration from file, environment,
// and command-line flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if binID != "" {
		cfg.BinID = binID
	}
	if masterKey != "" {
		cfg.MasterKey = masterKey
	}
	return cfg, nil
}

// authenticator returns the developer gate, honoring credential overrides.
func authenticator(cfg config.Config) auth.Authenticator {
	if cfg.Dev.Username != "" && cfg.Dev.Password != "" {
		return auth.Static{Username: cfg.Dev.Username, Password: cfg.Dev.Password}
	}
	return auth.Default()
}

// runTerminal launches the interactive terminal.
func runTerminal() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logging.Initialize(config.LogDir(), cfg.Debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.CloseAll()

	model := term.InitTerm(term.Options{
		Config: cfg,
		Store:  store.NewClient(cfg.BinURL(), cfg.MasterKey),
		Auth:   authenticator(cfg),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}
	return nil
}
