package manifest

import (
	"fmt"
	"slices"
	"sort"

	"github.com/BurntSushi/toml"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/cmdext/internal/coerce"
)

// table is a decoded mapping that remembers the order of its keys.
type table struct {
	*orderedmap.OrderedMap[string, any]
}

func newTable() table {
	return table{orderedmap.New[string, any]()}
}

// TypeTag makes tables count as objects for coerce.
func (t table) TypeTag() coerce.Tag {
	return coerce.Object
}

// plain returns a shallow map copy for coerce.Shape.
func (t table) plain() map[string]any {
	m := make(map[string]any, t.Len())
	for pair := t.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

func decodeYAML(data []byte) (table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return table{}, err
	}

	v, err := fromYAML(&doc)
	if err != nil {
		return table{}, err
	}
	switch root := v.(type) {
	case nil:
		return newTable(), nil
	case table:
		return root, nil
	default:
		return table{}, fmt.Errorf("top level must be a mapping, got %s", coerce.TypeOf(v))
	}
}

func fromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		t := newTable()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			t.Set(n.Content[i].Value, v)
		}
		return t, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
}

func decodeTOML(data []byte) (table, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return table{}, err
	}
	return orderTOML(raw, nil, md.Keys()), nil
}

// orderTOML rebuilds m as a table using the document order of keys. Keys
// the metadata does not list follow in sorted order.
func orderTOML(m map[string]any, prefix toml.Key, keys []toml.Key) table {
	t := newTable()
	for _, k := range keys {
		if len(k) != len(prefix)+1 || !slices.Equal(k[:len(prefix)], prefix) {
			continue
		}
		name := k[len(k)-1]
		if _, seen := t.Get(name); seen {
			continue
		}
		if v, ok := m[name]; ok {
			t.Set(name, fromTOML(v, k, keys))
		}
	}

	var rest []string
	for name := range m {
		if _, seen := t.Get(name); !seen {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		key := append(append(toml.Key{}, prefix...), name)
		t.Set(name, fromTOML(m[name], key, keys))
	}
	return t
}

func fromTOML(v any, key toml.Key, keys []toml.Key) any {
	switch x := v.(type) {
	case map[string]any:
		return orderTOML(x, key, keys)
	case []map[string]any:
		out := make([]any, len(x))
		for i, m := range x {
			out[i] = orderTOML(m, key, nil)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = fromTOML(e, key, keys)
		}
		return out
	default:
		return v
	}
}
