// Package localefs stores translation trees as one file per locale directory:
// <root>/<locale>/<file name>.
package localefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/ports/output"
)

// DefaultFileName is the translation file looked up in each locale directory.
const DefaultFileName = "common.json"

// Ensure Store implements the output.LocaleStore port.
var _ output.LocaleStore = (*Store)(nil)

// Codec converts a translation tree to and from file contents.
type Codec interface {
	Decode(data []byte) (*entities.Tree, error)
	Encode(tree *entities.Tree) ([]byte, error)
}

// CodecFor picks the codec matching the extension of fileName.
func CodecFor(fileName string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".json":
		return jsonCodec{}, nil
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("localefs: unsupported locale file type %q", fileName)
	}
}

// Store is the filesystem-backed LocaleStore.
type Store struct {
	root     string
	fileName string
	codec    Codec
	logger   *zap.Logger
}

// NewStore returns a store rooted at root reading fileName in every locale
// directory.
func NewStore(root, fileName string, logger *zap.Logger) (*Store, error) {
	if fileName == "" {
		fileName = DefaultFileName
	}
	codec, err := CodecFor(fileName)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		root:     root,
		fileName: fileName,
		codec:    codec,
		logger:   logger,
	}, nil
}

// Path returns the backing file of locale.
func (s *Store) Path(locale string) string {
	return filepath.Join(s.root, locale, s.fileName)
}

// ListLocales returns every subdirectory of the root, sorted.
func (s *Store) ListLocales(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("localefs: read locales dir %s: %w", s.root, err)
	}

	var locales []string
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(s.root, e.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		if _, err := language.Parse(e.Name()); err != nil {
			s.logger.Warn("locale directory is not a valid language tag",
				zap.String("locale", e.Name()), zap.Error(err))
		}
		locales = append(locales, e.Name())
	}
	sort.Strings(locales)
	return locales, nil
}

// Load reads the locale's file. A missing or unparsable file yields an empty
// tree and a domain error the caller may choose to tolerate.
func (s *Store) Load(_ context.Context, locale string) (*entities.Tree, error) {
	path := s.Path(locale)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entities.NewTree(), fmt.Errorf("localefs: %s: %w", path, domain.ErrLocaleFileMissing)
		}
		return entities.NewTree(), fmt.Errorf("localefs: read %s: %v: %w", path, err, domain.ErrLocaleFileMalformed)
	}
	tree, err := s.codec.Decode(data)
	if err != nil {
		return entities.NewTree(), fmt.Errorf("localefs: parse %s: %v: %w", path, err, domain.ErrLocaleFileMalformed)
	}
	return tree, nil
}

// Save writes tree to the locale's file, creating its directory if needed.
func (s *Store) Save(_ context.Context, locale string, tree *entities.Tree) error {
	path := s.Path(locale)
	data, err := s.codec.Encode(tree)
	if err != nil {
		return fmt.Errorf("localefs: encode %s: %w", locale, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("localefs: ensure dir for %s: %w", locale, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("localefs: write %s: %w", path, err)
	}
	s.logger.Debug("locale saved", zap.String("locale", locale), zap.String("path", path))
	return nil
}
