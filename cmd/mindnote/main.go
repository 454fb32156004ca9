package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindnote/internal/app"
	"mindnote/internal/config"
	"mindnote/internal/logger"
)

// Version is set during build with -ldflags
var version = app.AppVersion

var (
	configPath string
	logLevel   string
	jsonLogs   bool
)

var rootCmd = &cobra.Command{
	Use:          "mindnote [file]",
	Short:        "A small plain-text editor",
	Long:         `Mind Note edits one plain UTF-8 text file at a time, with document-wide font styling and a guard against losing unsaved changes.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("json-logs") {
			cfg.JSONLogs = jsonLogs
		}

		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log := logger.New(level, cfg.JSONLogs)

		application, err := app.NewApplication(cfg, log)
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}

		initialPath := ""
		if len(args) == 1 {
			initialPath = args[0]
		}
		return application.Run(initialPath)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Mind Note",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Mind Note version %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to the YAML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error or off")
	rootCmd.Flags().BoolVar(&jsonLogs, "json-logs", false, "write logs as JSON")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
