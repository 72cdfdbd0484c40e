package localefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"localesync/internal/domain/entities"
)

const indentUnit = "  "

// jsonCodec reads and writes locale files as JSON objects. Decoding keeps key
// order and number literals; encoding mirrors 2-space pretty printing without
// HTML escaping.
type jsonCodec struct{}

func (jsonCodec) Decode(data []byte) (*entities.Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tree, err := decodeJSONObject(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	return tree, nil
}

func decodeJSONObject(dec *json.Decoder) (*entities.Tree, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, found %v", tok)
	}

	tree := entities.NewTree()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, found %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		node, err := decodeJSONValue(raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		tree.Set(key, node)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tree, nil
}

func decodeJSONValue(raw json.RawMessage) (entities.Node, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return entities.Node{}, fmt.Errorf("empty value")
	}
	switch trimmed[0] {
	case '{':
		inner := json.NewDecoder(bytes.NewReader(trimmed))
		inner.UseNumber()
		sub, err := decodeJSONObject(inner)
		if err != nil {
			return entities.Node{}, err
		}
		return entities.Namespace(sub), nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return entities.Node{}, err
		}
		return entities.String(s), nil
	default:
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return entities.Node{}, err
		}
		return entities.Opaque(v), nil
	}
}

func (jsonCodec) Encode(tree *entities.Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSONTree(&buf, tree, ""); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeJSONTree(buf *bytes.Buffer, tree *entities.Tree, indent string) error {
	keys := tree.Keys()
	if len(keys) == 0 {
		buf.WriteString("{}")
		return nil
	}
	inner := indent + indentUnit
	buf.WriteString("{\n")
	for i, k := range keys {
		n, _ := tree.Get(k)
		key, err := entities.CompactJSON(k)
		if err != nil {
			return err
		}
		buf.WriteString(inner)
		buf.Write(key)
		buf.WriteString(": ")
		if err := encodeJSONNode(buf, n, inner); err != nil {
			return fmt.Errorf("key %q: %w", k, err)
		}
		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteByte('}')
	return nil
}

func encodeJSONNode(buf *bytes.Buffer, n entities.Node, indent string) error {
	if n.Kind() == entities.KindNamespace {
		return encodeJSONTree(buf, n.Tree(), indent)
	}
	compact, err := entities.CompactJSON(n.Value())
	if err != nil {
		return err
	}
	if n.Kind() == entities.KindString {
		buf.Write(compact)
		return nil
	}
	return json.Indent(buf, compact, indent, indentUnit)
}
