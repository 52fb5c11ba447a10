// Package configfile reads and writes configuration documents as JSON or YAML.
//
// Both formats carry the same document: YAML is produced from the JSON
// encoding so triggers and actions keep their {"type", "data"} shape.
package configfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/hotdeck/pkg/domain"
)

// Format is a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension. Anything other
// than .yaml or .yml is JSON, the format exports use by default.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json or yaml)", s)
}

// Encode writes cfg to w.
func Encode(w io.Writer, cfg *domain.Configuration, format Format) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if format == JSON {
		_, err = w.Write(append(data, '\n'))
		return err
	}

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("failed to convert configuration to yaml: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return enc.Close()
}

// Decode reads a configuration from r. It only parses; validation happens on import.
func Decode(r io.Reader, format Format) (*domain.Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if format == YAML {
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse yaml configuration: %w", err)
		}
		if data, err = json.Marshal(normalize(tree)); err != nil {
			return nil, fmt.Errorf("failed to convert yaml configuration: %w", err)
		}
	}

	var cfg domain.Configuration
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (*domain.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration: %w", err)
	}
	defer f.Close()
	return Decode(f, FormatFromPath(path))
}

// Save writes cfg to path in the format implied by its extension.
func Save(path string, cfg *domain.Configuration) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, FormatFromPath(path)); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to ensure directory: %w", err)
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// normalize turns the map[any]any nodes yaml may produce into JSON-encodable maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	}
	return v
}
