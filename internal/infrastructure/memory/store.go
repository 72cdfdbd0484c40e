// Package memory provides a LocaleStore kept entirely in memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/ports/output"
)

// Ensure Store implements the output.LocaleStore port.
var _ output.LocaleStore = (*Store)(nil)

// Store holds one tree per locale. A locale registered with Malformed behaves
// like an unparsable file; a locale registered with Missing has no file yet.
type Store struct {
	mu        sync.Mutex
	trees     map[string]*entities.Tree
	locales   map[string]struct{}
	malformed map[string]struct{}
	saves     map[string]int
}

func NewStore() *Store {
	return &Store{
		trees:     make(map[string]*entities.Tree),
		locales:   make(map[string]struct{}),
		malformed: make(map[string]struct{}),
		saves:     make(map[string]int),
	}
}

// Put stores a copy of tree under locale.
func (s *Store) Put(locale string, tree *entities.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locales[locale] = struct{}{}
	s.trees[locale] = tree.Clone()
	delete(s.malformed, locale)
}

// Missing registers locale without a backing tree.
func (s *Store) Missing(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locales[locale] = struct{}{}
	delete(s.trees, locale)
}

// Malformed registers locale with unparsable content.
func (s *Store) Malformed(locale string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locales[locale] = struct{}{}
	s.malformed[locale] = struct{}{}
	delete(s.trees, locale)
}

// Tree returns a copy of the stored tree, nil when there is none.
func (s *Store) Tree(locale string) *entities.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trees[locale]
	if !ok {
		return nil
	}
	return t.Clone()
}

// Saves returns how many times locale was written.
func (s *Store) Saves(locale string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves[locale]
}

func (s *Store) ListLocales(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.locales))
	for l := range s.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) Load(_ context.Context, locale string) (*entities.Tree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.malformed[locale]; ok {
		return entities.NewTree(), fmt.Errorf("memory: %s: %w", locale, domain.ErrLocaleFileMalformed)
	}
	t, ok := s.trees[locale]
	if !ok {
		return entities.NewTree(), fmt.Errorf("memory: %s: %w", locale, domain.ErrLocaleFileMissing)
	}
	return t.Clone(), nil
}

func (s *Store) Save(_ context.Context, locale string, tree *entities.Tree) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locales[locale] = struct{}{}
	s.trees[locale] = tree.Clone()
	delete(s.malformed, locale)
	s.saves[locale]++
	return nil
}
