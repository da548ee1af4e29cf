package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/learngrid/learngrid/internal/api"
	"github.com/learngrid/learngrid/internal/config"
	"github.com/learngrid/learngrid/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "learngrid",
	Short: "Learning roadmaps and quizzes in the terminal",
	Long: `LearnGrid asks the LearnGrid API for a learning roadmap for any skill,
shows it as collapsible modules with resource links, and quizzes you on
any subtopic.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "LearnGrid API base URL (overrides LEARNGRID_API_URL)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides LEARNGRID_CONFIG)")
	rootCmd.PersistentFlags().String("log-file", "", "Write structured logs to this file (overrides LEARNGRID_LOG_FILE)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout, 0 for none (overrides LEARNGRID_TIMEOUT)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")

	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers command-line flags over config.Load.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("api-url") {
		cfg.APIBaseURL, _ = cmd.Flags().GetString("api-url")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if f := cmd.Flags().Lookup("concurrency"); f != nil && f.Changed {
		cfg.Concurrency, _ = cmd.Flags().GetInt("concurrency")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setup resolves configuration, opens the log file and builds the API
// client. The returned function closes the log file.
func setup(cmd *cobra.Command) (config.Config, api.Client, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cfg, nil, nil, err
	}

	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	logger, closeLog, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		logger, closeLog = logging.Discard(), func() error { return nil }
	}

	logger.Info("starting", "version", version, "api_url", cfg.APIBaseURL, "timeout", cfg.Timeout.String())

	client := api.WithLogging(api.NewHTTPClient(cfg.APIBaseURL, api.WithTimeout(cfg.Timeout)), logger)
	return cfg, client, func() { _ = closeLog() }, nil
}
