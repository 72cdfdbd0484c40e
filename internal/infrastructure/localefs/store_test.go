package localefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localesync/internal/domain"
	"localesync/internal/domain/entities"
	"localesync/internal/domain/keypath"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestStore(t *testing.T, root, fileName string) *Store {
	t.Helper()
	s, err := NewStore(root, fileName, nil)
	require.NoError(t, err)
	return s
}

func TestStore_ListLocales(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"fr", "de", "en", "pt-BR"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	writeFile(t, filepath.Join(root, "README.md"), "not a locale")

	s := newTestStore(t, root, "")
	got, err := s.ListLocales(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"de", "en", "fr", "pt-BR"}, got); diff != "" {
		t.Fatalf("ListLocales mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ListLocales_UnreadableRoot(t *testing.T) {
	s := newTestStore(t, filepath.Join(t.TempDir(), "missing"), "")
	_, err := s.ListLocales(context.Background())
	assert.Error(t, err)
}

func TestStore_Load(t *testing.T) {
	root := t.TempDir()
	s := newTestStore(t, root, "")
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		tree, err := s.Load(ctx, "fr")
		require.ErrorIs(t, err, domain.ErrLocaleFileMissing)
		assert.Equal(t, 0, tree.Len())
	})

	t.Run("malformed file", func(t *testing.T) {
		writeFile(t, s.Path("de"), `{"a": "x",`)
		tree, err := s.Load(ctx, "de")
		require.ErrorIs(t, err, domain.ErrLocaleFileMalformed)
		assert.Equal(t, 0, tree.Len())
	})

	t.Run("top level array", func(t *testing.T) {
		writeFile(t, s.Path("it"), `["a"]`)
		_, err := s.Load(ctx, "it")
		require.ErrorIs(t, err, domain.ErrLocaleFileMalformed)
	})

	t.Run("valid file", func(t *testing.T) {
		writeFile(t, s.Path("en"), `{"nav": {"home": "Home"}, "title": "T"}`)
		tree, err := s.Load(ctx, "en")
		require.NoError(t, err)
		assert.Equal(t, []string{"nav.home", "title"}, keypath.Flatten(tree))
	})
}

func TestStore_SaveCreatesDirectories(t *testing.T) {
	root := t.TempDir()
	s := newTestStore(t, root, "")

	tree := entities.NewTree()
	tree.Set("hello", entities.String("Bonjour"))
	require.NoError(t, s.Save(context.Background(), "fr", tree))

	data, err := os.ReadFile(filepath.Join(root, "fr", "common.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"hello\": \"Bonjour\"\n}\n", string(data))

	loaded, err := s.Load(context.Background(), "fr")
	require.NoError(t, err)
	assert.True(t, tree.Equal(loaded))
}

func TestStore_YAMLFiles(t *testing.T) {
	root := t.TempDir()
	s := newTestStore(t, root, "messages.yaml")
	writeFile(t, s.Path("en"), "nav:\n  home: Home\ntitle: T\n")

	tree, err := s.Load(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"nav.home", "title"}, keypath.Flatten(tree))
}

func TestNewStore_UnsupportedFileType(t *testing.T) {
	_, err := NewStore(t.TempDir(), "common.ini", nil)
	assert.Error(t, err)
}
