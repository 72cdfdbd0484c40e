// Package cli exposes the reconcile and validate use cases as cobra commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"localesync/internal/application"
	"localesync/internal/config"
	"localesync/internal/domain"
	"localesync/internal/infrastructure/i18n"
	"localesync/internal/infrastructure/localefs"
	"localesync/internal/logging"
)

// app carries the flags and the dependencies built once per invocation.
type app struct {
	configPath string
	localesDir string
	fileName   string
	verbose    bool

	settings domain.Settings
	logger   *zap.Logger
	store    *localefs.Store
}

// NewRootCommand builds the localesync command tree.
func NewRootCommand() *cobra.Command {
	a := &app{settings: domain.DefaultSettings()}

	root := &cobra.Command{
		Use:   "localesync",
		Short: "Keep locale translation files in line with the English reference",
		Long: `localesync reconciles every locale directory against the reference locale (en).

fix adds placeholders for missing keys, drops keys the reference no longer has
and promotes manual drafts left after the TODO_TRANSLATE marker.
validate reports missing, extra and pending keys with per-locale coverage.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML config file (default ./"+config.DefaultFile+" when present)")
	flags.StringVar(&a.localesDir, "locales-dir", "", "directory holding one subdirectory per locale")
	flags.StringVar(&a.fileName, "file-name", "", "translation file inside each locale directory (.json, .yaml or .yml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log per-key decisions")

	root.AddCommand(newFixCommand(a), newValidateCommand(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("locales-dir") {
		cfg.LocalesDir = a.localesDir
	}
	if cmd.Flags().Changed("file-name") {
		cfg.FileName = a.fileName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.logger, err = logging.New(cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.store, err = localefs.NewStore(cfg.LocalesDir, cfg.FileName, a.logger)
	if err != nil {
		return fmt.Errorf("open locale store: %w", err)
	}
	a.logger.Debug("configuration loaded",
		zap.String("locales_dir", cfg.LocalesDir),
		zap.String("file_name", cfg.FileName),
	)
	return nil
}

func (a *app) reconciler() *application.Reconciler {
	return application.NewReconciler(a.store, a.settings, a.logger)
}

func (a *app) validator() *application.Validator {
	return application.NewValidator(a.store, i18n.NewBundleChecker(a.settings.ReferenceLocale, a.logger), a.settings, a.logger)
}
