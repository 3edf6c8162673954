package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of preset overrides in the environment.
const EnvPrefix = "DIFFTEXT_"

// EnvLoader reads preset overrides from environment variables.
//
// DIFFTEXT_PRICE_LOCALE=fr sets styles.price.locale. Style names are
// lowercased; names containing underscores cannot be overridden.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderFrom creates a loader over a fixed list of KEY=value pairs.
func NewEnvLoaderFrom(prefix string, environ []string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: func() []string { return environ }}
}

// Load returns the overrides as a configuration map.
func (l *EnvLoader) Load() map[string]any {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		style, field, ok := strings.Cut(strings.TrimPrefix(name, l.prefix), "_")
		if !ok || style == "" || field == "" {
			continue
		}
		setByPath(config, []string{"styles", strings.ToLower(style), envField(field)}, parseValue(value))
	}
	return config
}

// envField converts INTEGER_DIGITS style names to the lowercase preset key.
func envField(field string) string {
	return strings.ReplaceAll(strings.ToLower(field), "_", "")
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// setByPath sets a value in a nested map, creating intermediate maps.
func setByPath(data map[string]any, parts []string, value any) {
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
