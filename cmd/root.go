package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/config"
	"github.com/fadi/mendly/internal/logging"
	"github.com/fadi/mendly/internal/store"
)

// cfg and logger are set up before any command runs.
var cfg config.Config

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "mendly",
	Short: "A calm wellness companion for your terminal",
	Long:  "Mendly: guided breathing, mood check-ins, self-screening questionnaires and a supportive chat, in your terminal.",

	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MENDLY_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides MENDLY_CONFIG env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Write debug messages to the log file")

	rootCmd.AddCommand(breatheCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(screenCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config file and opens the log.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = c

	verbose, _ := cmd.Flags().GetBool("verbose")
	l, err := logging.New(logging.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Verbose: verbose,
	})
	if err != nil {
		// Logging is not worth refusing to start over.
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		return nil
	}
	logger = l
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MENDLY_DB env var, then database.path from the config file, then the
// default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("MENDLY_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("opened database", zap.String("path", dbPath))
	return s, nil
}
