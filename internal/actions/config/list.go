package config

import (
	"encoding/json"

	"github.com/footprint-tools/cmdext/internal/dispatchers"
	"github.com/footprint-tools/cmdext/internal/domain"
)

// List prints every visible key and any hidden key that is set.
func List(deps Deps) dispatchers.Handler {
	return func(ctx *dispatchers.Context, _ ...any) error {
		return list(ctx.Positional(), ctx.Flags(), deps)
	}
}

type entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	var entries []entry
	for _, key := range domain.ConfigKeys {
		value, exists := configMap[key.Name]
		if key.Hidden && !exists {
			continue
		}
		if !exists {
			value = key.Default
		}
		entries = append(entries, entry{Key: key.Name, Value: value})
	}

	if flags.Has("--json") {
		data, err := json.Marshal(entries)
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	for _, e := range entries {
		_, _ = deps.Printf("%s=%s\n", e.Key, e.Value)
	}
	return nil
}
