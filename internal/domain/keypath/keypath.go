// Package keypath converts translation trees to and from dotted key paths.
package keypath

import (
	"strings"

	"localesync/internal/domain/entities"
)

// Separator joins the keys of a path.
const Separator = "."

// Join builds a path from a prefix and a key.
func Join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}

// Flatten lists the path of every leaf, in tree order, recursing into a
// namespace as soon as it is met.
func Flatten(t *entities.Tree) []string {
	var out []string
	flatten(t, "", &out)
	return out
}

func flatten(t *entities.Tree, prefix string, out *[]string) {
	for _, k := range t.Keys() {
		n, _ := t.Get(k)
		full := Join(prefix, k)
		if n.Kind() == entities.KindNamespace {
			flatten(n.Tree(), full, out)
			continue
		}
		*out = append(*out, full)
	}
}

// Index returns paths as a lookup set.
func Index(paths []string) map[string]struct{} {
	out := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		out[p] = struct{}{}
	}
	return out
}

// Unique drops repeated paths, keeping the first occurrence. A literal dotted
// key and a nested path can flatten to the same path.
func Unique(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Get walks path down t. It returns false as soon as a segment is missing or an
// intermediate segment is not a namespace.
func Get(t *entities.Tree, path string) (entities.Node, bool) {
	segments := strings.Split(path, Separator)
	cur := t
	for i, seg := range segments {
		n, ok := cur.Get(seg)
		if !ok {
			return entities.Node{}, false
		}
		if i == len(segments)-1 {
			return n, true
		}
		if n.Kind() != entities.KindNamespace {
			return entities.Node{}, false
		}
		cur = n.Tree()
	}
	return entities.Node{}, false
}

// Put assigns n at path, creating missing intermediate namespaces. An
// intermediate segment holding a leaf is replaced by an empty namespace.
func Put(t *entities.Tree, path string, n entities.Node) {
	segments := strings.Split(path, Separator)
	cur := t
	for _, seg := range segments[:len(segments)-1] {
		next, ok := cur.Get(seg)
		if !ok || next.Kind() != entities.KindNamespace {
			next = entities.Namespace(entities.NewTree())
			cur.Set(seg, next)
		}
		cur = next.Tree()
	}
	cur.Set(segments[len(segments)-1], n)
}
