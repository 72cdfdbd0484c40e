package output

import (
	"context"

	"localesync/internal/domain/entities"
)

// LocaleStore persists one translation tree per locale.
type LocaleStore interface {
	// ListLocales returns every locale identifier, sorted.
	ListLocales(ctx context.Context) ([]string, error)
	// Load returns the locale's tree. When the backing file is missing or
	// unparsable it returns an empty tree together with domain.ErrLocaleFileMissing
	// or domain.ErrLocaleFileMalformed.
	Load(ctx context.Context, locale string) (*entities.Tree, error)
	// Save replaces the locale's backing file with tree.
	Save(ctx context.Context, locale string, tree *entities.Tree) error
}
