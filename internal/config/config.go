package config

import (
	"encoding/json"
	"fmt"
	"io"
)

// Settings is the user-facing configuration surface. All fields are
// optional; missing fields keep their defaults.
type Settings struct {
	// ExcludeLanguages disables expansion (direct and completion-based)
	// for the listed language ids. Empty means no syntax is excluded.
	ExcludeLanguages []string `json:"excludeLanguages"`

	// StyleTagCompletions enables completion items for CSS abbreviations
	// inside <style> blocks of HTML documents. Direct expansion inside
	// style blocks is not gated by this flag.
	StyleTagCompletions bool `json:"styleTagCompletions"`

	// Indent is the unit used when re-indenting multi-line expansions.
	Indent string `json:"indent"`
}

var defaultSettings = Settings{
	ExcludeLanguages:    []string{},
	StyleTagCompletions: false,
	Indent:              "\t",
}

// Default returns a copy of the built-in settings.
func Default() Settings {
	return defaultSettings
}

// Load decodes settings from an arbitrary JSON-shaped value, such as LSP
// initializationOptions or a didChangeConfiguration payload. Only fields
// present in src overwrite the defaults. An "emmet" wrapper object is
// unwrapped first if present.
func Load(v any) (Settings, error) {
	cfg := defaultSettings

	if m, ok := v.(map[string]any); ok {
		if nested, ok := m["emmet"]; ok {
			v = nested
		}
	}

	data, err := json.Marshal(v)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to marshal source: %w", err)
	}

	// only fields present in src will overwrite.
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal into Settings: %w", err)
	}

	return cfg, nil
}

// LoadFromJSON reads JSON from r into Settings.
func LoadFromJSON(r io.Reader) (Settings, error) {
	cfg := defaultSettings

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return Settings{}, err
	}

	return cfg, nil
}
