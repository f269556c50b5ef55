package registry

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	burnt "github.com/BurntSushi/toml"
	"github.com/pelletier/go-toml/v2"
	"github.com/teranos/cegconf/errors"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for snapshots.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat accepts a format name, case-insensitively. "yml" means YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", errors.Newf("unsupported format: %s (supported: json, yaml, toml)", name)
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.WithHint(
			errors.Newf("cannot tell the format of %s", path),
			"use a .json, .yaml or .toml extension")
	}
	return ParseFormat(ext)
}

// Encode serializes the snapshot.
func Encode(s Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal snapshot to JSON")
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal snapshot to YAML")
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(s)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal snapshot to TOML")
		}
		return data, nil
	}
	return nil, errors.Newf("unsupported format: %s", format)
}

// Decode parses a snapshot. Keys the registry does not define are
// rejected with ErrUnknownKey so that stale exports are noticed.
func Decode(data []byte, format Format) (Snapshot, error) {
	var s Snapshot
	switch format {
	case FormatJSON:
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return Snapshot{}, errors.Wrap(err, "failed to parse JSON snapshot")
		}
		if unknown := unknownKeys(doc); len(unknown) > 0 {
			return Snapshot{}, errors.Wrapf(errors.ErrUnknownKey, "%s", strings.Join(unknown, ", "))
		}
		if err := json.Unmarshal(data, &s); err != nil {
			return Snapshot{}, errors.Wrap(err, "failed to parse JSON snapshot")
		}
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Snapshot{}, errors.Wrap(err, "failed to parse YAML snapshot")
		}
		if unknown := unknownKeys(doc); len(unknown) > 0 {
			return Snapshot{}, errors.Wrapf(errors.ErrUnknownKey, "%s", strings.Join(unknown, ", "))
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Snapshot{}, errors.Wrap(err, "failed to parse YAML snapshot")
		}
	case FormatTOML:
		md, err := burnt.Decode(string(data), &s)
		if err != nil {
			return Snapshot{}, errors.Wrap(err, "failed to parse TOML snapshot")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Snapshot{}, errors.Wrapf(errors.ErrUnknownKey, "%s", strings.Join(keys, ", "))
		}
	default:
		return Snapshot{}, errors.Newf("unsupported format: %s", format)
	}
	return s, nil
}
