package skelegen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DecodeWorkspace reads a snapshot in the given format ("json", "yaml",
// "toml"). YAML and TOML documents are re-encoded through the JSON shape so
// that every format shares the same field names.
func DecodeWorkspace(data []byte, format string) (Workspace, error) {
	var ws Workspace

	switch format {
	case "json", "":
	case "yaml", "yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return ws, fmt.Errorf("decode yaml: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return ws, fmt.Errorf("convert yaml: %w", err)
		}
		data = converted
	case "toml":
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return ws, fmt.Errorf("decode toml: %w", err)
		}
		converted, err := json.Marshal(doc)
		if err != nil {
			return ws, fmt.Errorf("convert toml: %w", err)
		}
		data = converted
	default:
		return ws, fmt.Errorf("unsupported workspace format %q", format)
	}

	if err := json.Unmarshal(data, &ws); err != nil {
		return ws, fmt.Errorf("decode workspace: %w", err)
	}
	return ws, nil
}

// EncodeWorkspace writes a snapshot in the given format
func EncodeWorkspace(ws Workspace, format string) ([]byte, error) {
	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode workspace: %w", err)
	}

	switch format {
	case "json", "":
		return append(data, '\n'), nil
	case "yaml", "yml":
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("convert workspace: %w", err)
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case "toml":
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("convert workspace: %w", err)
		}
		out, err := toml.Marshal(dropNulls(doc))
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported workspace format %q", format)
}

// LoadWorkspace reads a snapshot, picking the format from the extension
func LoadWorkspace(path string) (Workspace, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return Workspace{}, fmt.Errorf("read workspace: %w", err)
	}
	ws, err := DecodeWorkspace(data, formatFromPath(path))
	if err != nil {
		return Workspace{}, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// SaveWorkspace writes a snapshot, picking the format from the extension.
// The file is replaced atomically and keeps the mode of the file it
// replaces; new files are created 0644.
func SaveWorkspace(path string, ws Workspace) error {
	data, err := EncodeWorkspace(ws, formatFromPath(path))
	if err != nil {
		return err
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".workspace-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write workspace: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod workspace: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close workspace: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace workspace: %w", err)
	}
	return nil
}

// dropNulls removes null values, which TOML cannot represent
func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			if val == nil {
				delete(t, key)
				continue
			}
			t[key] = dropNulls(val)
		}
	case []any:
		for i, val := range t {
			t[i] = dropNulls(val)
		}
	}
	return v
}

func formatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// FindComponent returns the component with the given id
func (ws Workspace) FindComponent(id string) (Component, bool) {
	for _, c := range ws.Components {
		if c.ID == id {
			return c, true
		}
	}
	return Component{}, false
}
