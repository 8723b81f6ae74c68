package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Apply sets "section.key" entries on the configuration, such as
// "queueing.arrival_rate=5" passed through --set. Values are parsed as TOML
// literals; bare words that do not parse are taken as strings. The result
// is validated once after all overrides are applied.
func (c *Config) Apply(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.set(key, overrides[key]); err != nil {
			return err
		}
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("validating overrides: %w", err)
	}
	return nil
}

func (c *Config) set(key, value string) error {
	section, field, ok := strings.Cut(key, ".")
	if !ok || section == "" || field == "" {
		return fmt.Errorf("override %q: key must be section.field", key)
	}

	doc := fmt.Sprintf("[%s]\n%s = %s\n", section, field, value)
	meta, err := toml.Decode(doc, c)
	if err != nil {
		doc = fmt.Sprintf("[%s]\n%s = %s\n", section, field, strconv.Quote(value))
		meta, err = toml.Decode(doc, c)
	}
	if err != nil {
		return fmt.Errorf("override %q: %w", key, err)
	}
	if len(meta.Undecoded()) > 0 {
		return fmt.Errorf("override %q: unknown key", key)
	}
	return nil
}
