package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chris-regnier/gscctl/internal/config"
	"github.com/chris-regnier/gscctl/internal/gsc"
)

var (
	cfgFile    string
	jsonOutput bool
	credsFlag  string
	scopeFlag  string
	appConfig  *config.Config
	api        gsc.API
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gscctl",
	Short: "A Google Search Console CLI and MCP server",
	Long: "gscctl is a command-line tool for querying Google Search Console: search analytics,\n" +
		"period comparisons, URL inspection, and sitemap management. It can also serve the\n" +
		"same capabilities as MCP tools over stdio.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Flag overrides
		if credsFlag != "" {
			appConfig.CredentialsPath = credsFlag
		}
		if scopeFlag != "" {
			appConfig.Scope = scopeFlag
		}

		logger, err = newLogger(appConfig.LogLevel)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		api, err = gsc.NewClient(cmd.Context(), gsc.Options{
			CredentialsPath: appConfig.CredentialsPath,
			ReadOnly:        appConfig.ReadOnly(),
			Logger:          logger,
		})
		if err != nil {
			return fmt.Errorf("initializing Search Console client: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&credsFlag, "credentials", "", "service account credentials JSON path")
	rootCmd.PersistentFlags().StringVar(&scopeFlag, "scope", "", "API scope (readonly|full)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// newLogger builds a zap logger writing to stderr so stdout stays clean for
// command output and the MCP stdio transport.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
