package application

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/ports/output"
)

type loadedLocale struct {
	tree *entities.Tree
	// issue is the tolerated load error, nil for a clean load.
	issue error
}

// loadLocale applies the lenient load policy: a missing file is a warning, a
// malformed one an error, and both continue with an empty tree. In strict
// mode a malformed file aborts the run.
func loadLocale(ctx context.Context, store output.LocaleStore, logger *zap.Logger, locale string, strict bool) (loadedLocale, error) {
	tree, err := store.Load(ctx, locale)
	if err == nil {
		return loadedLocale{tree: tree}, nil
	}
	if !domain.IsRecoverableLoadError(err) {
		return loadedLocale{}, err
	}
	if errors.Is(err, domain.ErrLocaleFileMalformed) {
		if strict {
			return loadedLocale{}, err
		}
		logger.Error("locale file is malformed, treating it as empty",
			zap.String("locale", locale), zap.Error(err))
	} else {
		logger.Warn("locale file does not exist, treating it as empty",
			zap.String("locale", locale), zap.Error(err))
	}
	return loadedLocale{tree: entities.NewTree(), issue: err}, nil
}
