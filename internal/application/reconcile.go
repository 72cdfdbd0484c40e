package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/domain/keypath"
	"localesync/internal/ports/input"
	"localesync/internal/ports/output"
	"localesync/pkg/textutil"
)

var _ input.ReconcileUseCase = (*Reconciler)(nil)

// Reconciler aligns every locale's key set with the reference locale.
type Reconciler struct {
	store    output.LocaleStore
	settings domain.Settings
	logger   *zap.Logger
}

func NewReconciler(store output.LocaleStore, settings domain.Settings, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		store:    store,
		settings: settings,
		logger:   logger,
	}
}

// Reconcile processes every non-reference locale in order and saves the ones
// that changed.
func (r *Reconciler) Reconcile(ctx context.Context, opts input.ReconcileOptions) (*entities.ReconcileReport, error) {
	locales, err := r.store.ListLocales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	ref, err := loadLocale(ctx, r.store, r.logger, r.settings.ReferenceLocale, opts.Strict)
	if err != nil {
		return nil, fmt.Errorf("load reference %s: %w", r.settings.ReferenceLocale, err)
	}
	refPaths := keypath.Flatten(ref.tree)
	if len(refPaths) == 0 {
		return nil, fmt.Errorf("reference %s: %w", r.settings.ReferenceLocale, domain.ErrEmptyReference)
	}

	report := &entities.ReconcileReport{
		Reference: r.settings.ReferenceLocale,
		DryRun:    opts.DryRun,
	}
	for _, locale := range locales {
		if locale == r.settings.ReferenceLocale {
			continue
		}
		target, err := loadLocale(ctx, r.store, r.logger, locale, opts.Strict)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", locale, err)
		}

		change := r.ReconcileTree(ref.tree, refPaths, target.tree)
		change.Locale = locale
		change.LoadIssue = target.issue

		if change.Changed() && !opts.DryRun {
			if err := r.store.Save(ctx, locale, target.tree); err != nil {
				return nil, fmt.Errorf("save %s: %w", locale, err)
			}
			change.Saved = true
		}
		r.logger.Info("locale reconciled",
			zap.String("locale", locale),
			zap.Int("added", change.Added),
			zap.Int("refreshed", change.Refreshed),
			zap.Int("adopted", change.Adopted),
			zap.Int("removed", change.Removed),
			zap.Bool("saved", change.Saved),
		)
		report.Locales = append(report.Locales, change)
	}
	return report, nil
}

// ReconcileTree mutates target so that its key paths equal refPaths, the
// flattened paths of ref. It never reads or writes storage.
func (r *Reconciler) ReconcileTree(ref *entities.Tree, refPaths []string, target *entities.Tree) entities.LocaleChange {
	var change entities.LocaleChange
	valid := keypath.Index(refPaths)

	var extras int
	for _, p := range keypath.Flatten(target) {
		if _, ok := valid[p]; !ok {
			extras++
		}
	}
	if extras > 0 {
		pruneTree(target, "", valid)
		change.Removed = extras
	}

	for _, path := range refPaths {
		english, _ := keypath.Get(ref, path)
		existing, found := keypath.Get(target, path)

		blank := found && isBlank(existing)
		needsWork := !found || blank || existing.Kind() == entities.KindNamespace
		if s, ok := existing.StringValue(); found && ok && r.settings.IsPlaceholder(s) {
			needsWork = true
		}
		if !needsWork {
			continue
		}

		value, adopted := r.resolve(english, existing, found)
		if found && existing.Equal(value) {
			continue
		}
		keypath.Put(target, path, value)
		switch {
		case adopted:
			change.Adopted++
		case found && !blank && existing.Kind() == entities.KindString:
			change.Refreshed++
		default:
			change.Added++
		}
	}
	return change
}

// isBlank reports whether n holds no translation at all: an empty string or
// null. Both are filled like a missing key.
func isBlank(n entities.Node) bool {
	if s, ok := n.StringValue(); ok {
		return s == ""
	}
	return n.Kind() == entities.KindOpaque && n.Value() == nil
}

// resolve picks the value for a key that needs attention: a manual draft
// left after the marker wins, otherwise a fresh placeholder of the English text.
func (r *Reconciler) resolve(english, existing entities.Node, found bool) (entities.Node, bool) {
	englishText := english.Text()
	if found {
		if s, ok := existing.StringValue(); ok {
			if draft, isPlaceholder := r.settings.Draft(s); isPlaceholder && draft != "" && draft != englishText {
				r.logger.Debug("using manual translation", zap.String("english", textutil.Preview(englishText, 30)))
				return entities.String(draft), true
			}
		}
	}
	r.logger.Debug("manual translation needed", zap.String("english", textutil.Preview(englishText, 30)))
	return entities.String(r.settings.Placeholder(englishText)), false
}

// pruneTree deletes leaves whose path is not in valid, then namespaces left
// empty, bottom-up.
func pruneTree(t *entities.Tree, prefix string, valid map[string]struct{}) {
	for _, k := range t.Keys() {
		n, _ := t.Get(k)
		full := keypath.Join(prefix, k)
		if n.Kind() == entities.KindNamespace {
			pruneTree(n.Tree(), full, valid)
			if n.Tree().Len() == 0 {
				t.Delete(k)
			}
			continue
		}
		if _, ok := valid[full]; !ok {
			t.Delete(k)
		}
	}
}
