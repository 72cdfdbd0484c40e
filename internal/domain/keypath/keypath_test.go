package keypath

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localesync/internal/domain/entities"
)

func sampleTree() *entities.Tree {
	nav := entities.NewTree()
	nav.Set("home", entities.String("Home"))
	nav.Set("about", entities.String("About"))

	deep := entities.NewTree()
	deep.Set("leaf", entities.String("Leaf"))
	inner := entities.NewTree()
	inner.Set("deep", entities.Namespace(deep))

	t := entities.NewTree()
	t.Set("title", entities.String("Title"))
	t.Set("nav", entities.Namespace(nav))
	t.Set("count", entities.Opaque(json.Number("3")))
	t.Set("tags", entities.Opaque([]any{"a", "b"}))
	t.Set("nothing", entities.Opaque(nil))
	t.Set("outer", entities.Namespace(inner))
	t.Set("footer", entities.String("Footer"))
	return t
}

func TestFlatten(t *testing.T) {
	got := Flatten(sampleTree())
	want := []string{
		"title",
		"nav.home",
		"nav.about",
		"count",
		"tags",
		"nothing",
		"outer.deep.leaf",
		"footer",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatten_EmptyNamespacesYieldNoPaths(t *testing.T) {
	tree := entities.NewTree()
	tree.Set("empty", entities.Namespace(entities.NewTree()))
	assert.Empty(t, Flatten(tree))
	assert.Empty(t, Flatten(entities.NewTree()))
}

func TestUnique(t *testing.T) {
	got := Unique([]string{"a.b", "c", "a.b", "d", "c"})
	if diff := cmp.Diff([]string{"a.b", "c", "d"}, got); diff != "" {
		t.Errorf("Unique (-want +got):\n%s", diff)
	}
	assert.Empty(t, Unique(nil))
}

func TestGet(t *testing.T) {
	tree := sampleTree()

	t.Run("leaf", func(t *testing.T) {
		n, ok := Get(tree, "nav.home")
		require.True(t, ok)
		s, _ := n.StringValue()
		assert.Equal(t, "Home", s)
	})

	t.Run("namespace", func(t *testing.T) {
		n, ok := Get(tree, "nav")
		require.True(t, ok)
		assert.Equal(t, entities.KindNamespace, n.Kind())
	})

	t.Run("array is a leaf", func(t *testing.T) {
		n, ok := Get(tree, "tags")
		require.True(t, ok)
		assert.Equal(t, entities.KindOpaque, n.Kind())
		_, ok = Get(tree, "tags.0")
		assert.False(t, ok)
	})

	t.Run("through a string", func(t *testing.T) {
		_, ok := Get(tree, "title.x")
		assert.False(t, ok)
	})

	t.Run("through null", func(t *testing.T) {
		_, ok := Get(tree, "nothing.x")
		assert.False(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := Get(tree, "nav.contact")
		assert.False(t, ok)
	})
}

func TestPut(t *testing.T) {
	t.Run("creates intermediates", func(t *testing.T) {
		tree := entities.NewTree()
		Put(tree, "a.b.c", entities.String("x"))

		n, ok := Get(tree, "a.b.c")
		require.True(t, ok)
		assert.Equal(t, "x", n.Text())
		assert.Equal(t, []string{"a.b.c"}, Flatten(tree))
	})

	t.Run("replaces in place", func(t *testing.T) {
		tree := sampleTree()
		Put(tree, "nav.home", entities.String("Accueil"))
		assert.Equal(t, []string{"home", "about"}, mustNamespace(t, tree, "nav").Keys())

		n, _ := Get(tree, "nav.home")
		assert.Equal(t, "Accueil", n.Text())
	})

	t.Run("appends new keys", func(t *testing.T) {
		tree := sampleTree()
		Put(tree, "nav.contact", entities.String("Contact"))
		assert.Equal(t, []string{"home", "about", "contact"}, mustNamespace(t, tree, "nav").Keys())
	})

	t.Run("leaf intermediate becomes namespace", func(t *testing.T) {
		tree := sampleTree()
		Put(tree, "title.short", entities.String("T"))
		n, ok := Get(tree, "title.short")
		require.True(t, ok)
		assert.Equal(t, "T", n.Text())
	})
}

func mustNamespace(t *testing.T, tree *entities.Tree, key string) *entities.Tree {
	t.Helper()
	n, ok := tree.Get(key)
	require.True(t, ok, "key %q missing", key)
	require.Equal(t, entities.KindNamespace, n.Kind())
	return n.Tree()
}
