package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/tictoc/pkg"
)

// resolve is a [kong.ConfigurationLoader] for YAML configuration files:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// Keys name flags without their leading dashes. Hyphens and underscores are
// interchangeable, and nested mappings are joined with hyphens, so the three
// files below are equivalent:
//
//	log-level: debug
//
//	log_level: debug
//
//	log:
//	  level: debug
//
// Command-line flags override configuration file values. An empty file is
// not an error.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, pkg.ErrReadConfig.Wrap(err)
	}

	cfg := make(config, len(raw))
	cfg.flatten("", raw)

	return cfg, nil
}

// config implements [kong.Resolver] over a flattened YAML document.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[normalizeKey(flag.Name)]; ok {
		return value, nil
	}

	// nil lets kong fall back to the flag's default.
	return nil, nil
}

// flatten stores every scalar of m under its hyphen-joined key path.
func (c config) flatten(prefix string, m map[string]any) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		key := normalizeKey(k)
		if prefix != "" {
			key = prefix + "-" + key
		}

		if sub, ok := m[k].(map[string]any); ok {
			c.flatten(key, sub)

			continue
		}

		c[key] = flagValue(m[k])
	}
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, "_", "-"))
}

// flagValue converts a decoded YAML value to a form kong's mappers accept.
// Numbers become strings, and sequences become comma-separated lists.
func flagValue(v any) any {
	switch v := v.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = fmt.Sprint(flagValue(e))
		}

		return strings.Join(parts, ",")
	default:
		return v
	}
}
