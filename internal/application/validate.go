package application

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/domain/keypath"
	"localesync/internal/ports/input"
	"localesync/internal/ports/output"
)

var _ input.ValidateUseCase = (*Validator)(nil)

// Validator audits every locale against the reference. It never writes.
type Validator struct {
	store     output.LocaleStore
	templates output.TemplateChecker
	settings  domain.Settings
	logger    *zap.Logger
}

// NewValidator builds a Validator. templates may be nil when template checks
// are never requested.
func NewValidator(store output.LocaleStore, templates output.TemplateChecker, settings domain.Settings, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		store:     store,
		templates: templates,
		settings:  settings,
		logger:    logger,
	}
}

// Validate computes stats for every locale, the reference included.
func (v *Validator) Validate(ctx context.Context, opts input.ValidateOptions) (*entities.ValidationReport, error) {
	locales, err := v.store.ListLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	ref, err := loadLocale(ctx, v.store, v.logger, v.settings.ReferenceLocale, opts.Strict)
	if err != nil {
		return nil, fmt.Errorf("load reference %s: %w", v.settings.ReferenceLocale, err)
	}
	refPaths := keypath.Flatten(ref.tree)

	report := &entities.ValidationReport{Reference: v.settings.ReferenceLocale}
	for _, locale := range locales {
		target := ref
		if locale != v.settings.ReferenceLocale {
			target, err = loadLocale(ctx, v.store, v.logger, locale, opts.Strict)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", locale, err)
			}
		}

		stats := v.ComputeStats(locale, refPaths, target.tree)
		stats.LoadIssue = target.issue
		if opts.CheckTemplates && v.templates != nil {
			stats.TemplateIssues = v.templates.CheckTemplates(locale, target.tree)
		}
		report.Locales = append(report.Locales, stats)
	}
	return report, nil
}

// ComputeStats compares target against refPaths, the flattened reference.
func (v *Validator) ComputeStats(locale string, refPaths []string, target *entities.Tree) entities.LocaleStats {
	refPaths = keypath.Unique(refPaths)
	targetPaths := keypath.Unique(keypath.Flatten(target))
	refIndex := keypath.Index(refPaths)
	targetIndex := keypath.Index(targetPaths)

	stats := entities.LocaleStats{
		Locale: locale,
		Total:  len(refIndex),
	}
	for _, p := range refPaths {
		if _, ok := targetIndex[p]; !ok {
			stats.Missing = append(stats.Missing, p)
		}
	}
	for _, p := range targetPaths {
		if _, ok := refIndex[p]; !ok {
			stats.Extra = append(stats.Extra, p)
		}
		n, _ := keypath.Get(target, p)
		if s, ok := n.StringValue(); ok && v.settings.IsPlaceholder(s) {
			stats.Pending = append(stats.Pending, p)
		}
	}
	stats.Translated = len(targetIndex) - len(stats.Pending)
	stats.Coverage = coverage(stats.Translated, stats.Total)
	return stats
}

// coverage is the rounded percentage of translated keys over the reference
// total. It is not clamped; a reference without keys counts as fully covered.
func coverage(translated, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Floor(100*float64(translated)/float64(total) + 0.5))
}
