package entities

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
)

// Kind discriminates the variants a Node can hold. The zero Kind marks the
// zero Node, which holds nothing.
type Kind uint8

const (
	// KindString is a translated message.
	KindString Kind = iota + 1
	// KindOpaque is any other leaf: number, boolean, null or array.
	// Opaque leaves are never descended into.
	KindOpaque
	// KindNamespace is a nested Tree.
	KindNamespace
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindOpaque:
		return "opaque"
	case KindNamespace:
		return "namespace"
	default:
		return "unknown"
	}
}

// Node is one value of a translation tree.
type Node struct {
	kind  Kind
	text  string
	value any
	tree  *Tree
}

// String builds a message leaf.
func String(s string) Node {
	return Node{kind: KindString, text: s}
}

// Opaque builds a non-string leaf. v is whatever the codec decoded
// (json.Number, bool, nil, []any, ...).
func Opaque(v any) Node {
	return Node{kind: KindOpaque, value: v}
}

// Namespace wraps t as a node. A nil tree becomes an empty namespace.
func Namespace(t *Tree) Node {
	if t == nil {
		t = NewTree()
	}
	return Node{kind: KindNamespace, tree: t}
}

func (n Node) Kind() Kind { return n.kind }

// IsLeaf reports whether the node terminates a key path.
func (n Node) IsLeaf() bool { return n.kind == KindString || n.kind == KindOpaque }

// StringValue returns the message text when the node is a string leaf.
func (n Node) StringValue() (string, bool) {
	if n.kind != KindString {
		return "", false
	}
	return n.text, true
}

// Value returns the decoded value of an opaque leaf, or the text of a string leaf.
func (n Node) Value() any {
	if n.kind == KindString {
		return n.text
	}
	return n.value
}

// Tree returns the nested tree of a namespace node, nil otherwise.
func (n Node) Tree() *Tree {
	if n.kind != KindNamespace {
		return nil
	}
	return n.tree
}

// Text renders a leaf as plain text: the message itself for strings, compact
// JSON for opaque leaves.
func (n Node) Text() string {
	switch n.kind {
	case KindString:
		return n.text
	case KindOpaque:
		b, err := CompactJSON(n.value)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}

// CompactJSON encodes v on one line without escaping <, > and &.
func CompactJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Equal reports deep equality, including key order inside namespaces.
func (n Node) Equal(o Node) bool {
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case KindString:
		return n.text == o.text
	case KindNamespace:
		return n.tree.Equal(o.tree)
	default:
		return reflect.DeepEqual(n.value, o.value)
	}
}

// Tree is an ordered string-keyed mapping of nodes. The zero value is not
// usable; call NewTree.
type Tree struct {
	keys   []string
	values map[string]Node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{values: make(map[string]Node)}
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Keys returns the keys in insertion order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t *Tree) Get(key string) (Node, bool) {
	if t == nil {
		return Node{}, false
	}
	n, ok := t.values[key]
	return n, ok
}

// Set assigns key. An existing key keeps its position, a new key is appended.
func (t *Tree) Set(key string, n Node) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = n
}

// Delete removes key and reports whether it was present.
func (t *Tree) Delete(key string) bool {
	if _, ok := t.values[key]; !ok {
		return false
	}
	delete(t.values, key)
	for i, k := range t.keys {
		if k == key {
			t.keys = append(t.keys[:i], t.keys[i+1:]...)
			break
		}
	}
	return true
}

// Clone returns a deep copy. Opaque values are shared; they are never mutated.
func (t *Tree) Clone() *Tree {
	out := NewTree()
	if t == nil {
		return out
	}
	for _, k := range t.keys {
		n := t.values[k]
		if n.kind == KindNamespace {
			n = Namespace(n.tree.Clone())
		}
		out.Set(k, n)
	}
	return out
}

// Equal reports whether both trees hold the same keys in the same order with
// equal values.
func (t *Tree) Equal(o *Tree) bool {
	if t.Len() != o.Len() {
		return false
	}
	if t.Len() == 0 {
		return true
	}
	for i, k := range t.keys {
		if o.keys[i] != k {
			return false
		}
		if !t.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}

// String is a debugging aid: keys and leaves in order, one per line.
func (t *Tree) String() string {
	var b strings.Builder
	t.dump(&b, "")
	return b.String()
}

func (t *Tree) dump(b *strings.Builder, indent string) {
	for _, k := range t.Keys() {
		n := t.values[k]
		if n.kind == KindNamespace {
			b.WriteString(indent + k + ":\n")
			n.tree.dump(b, indent+"  ")
			continue
		}
		b.WriteString(indent + k + " = " + n.Text() + "\n")
	}
}
