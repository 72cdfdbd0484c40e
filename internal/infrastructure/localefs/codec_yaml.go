package localefs

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"localesync/internal/domain/entities"
)

// yamlCodec reads and writes locale files as YAML mappings through the node
// API so that key order survives a round trip.
type yamlCodec struct{}

func (yamlCodec) Decode(data []byte) (*entities.Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		// Empty document.
		return entities.NewTree(), nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("expected a single YAML document")
	}
	return decodeYAMLMapping(resolveAlias(doc.Content[0]))
}

func decodeYAMLMapping(n *yaml.Node) (*entities.Tree, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	tree := entities.NewTree()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], resolveAlias(n.Content[i+1])
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}
		node, err := decodeYAMLValue(valNode)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyNode.Value, err)
		}
		tree.Set(keyNode.Value, node)
	}
	return tree, nil
}

func decodeYAMLValue(n *yaml.Node) (entities.Node, error) {
	switch {
	case n.Kind == yaml.MappingNode:
		sub, err := decodeYAMLMapping(n)
		if err != nil {
			return entities.Node{}, err
		}
		return entities.Namespace(sub), nil
	case n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str":
		return entities.String(n.Value), nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return entities.Node{}, err
		}
		return entities.Opaque(v), nil
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func (yamlCodec) Encode(tree *entities.Tree) ([]byte, error) {
	root, err := encodeYAMLTree(tree)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeYAMLTree(tree *entities.Tree) (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if tree.Len() == 0 {
		m.Style = yaml.FlowStyle
	}
	for _, k := range tree.Keys() {
		n, _ := tree.Get(k)
		val, err := encodeYAMLNode(n)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			val,
		)
	}
	return m, nil
}

func encodeYAMLNode(n entities.Node) (*yaml.Node, error) {
	switch n.Kind() {
	case entities.KindNamespace:
		return encodeYAMLTree(n.Tree())
	case entities.KindString:
		s, _ := n.StringValue()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	default:
		var out yaml.Node
		if err := out.Encode(n.Value()); err != nil {
			return nil, err
		}
		return &out, nil
	}
}
